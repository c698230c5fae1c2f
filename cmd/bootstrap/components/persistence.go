package components

import (
	"clinic-booking/internal/infra/memstore"
	"clinic-booking/internal/infra/readstore"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/infra/uow"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewPersistence,
	),
)

type persistenceIn struct {
	fx.In

	Config  config.Config
	Pool    *pgxpool.Pool
	Queries *sqlc.Queries
}

// Persistence is the write side and the read stores of the selected driver.
type Persistence struct {
	fx.Out

	UnitOfWork       shared.UnitOfWork
	PatientReadStore queries.PatientReadStore
	VisitReadStore   queries.VisitReadStore
}

func NewPersistence(p persistenceIn) Persistence {
	if p.Config.Store.Driver == config.StoreDriverMemory {
		store := memstore.New()
		return Persistence{
			UnitOfWork:       store,
			PatientReadStore: memstore.NewPatientReadStore(store),
			VisitReadStore:   memstore.NewVisitReadStore(store),
		}
	}

	return Persistence{
		UnitOfWork:       uow.NewPostgresUoW(p.Pool, p.Queries),
		PatientReadStore: readstore.NewPatientReadStore(p.Queries, NewDBTX(p.Pool)),
		VisitReadStore:   readstore.NewVisitReadStore(p.Queries, NewDBTX(p.Pool)),
	}
}

func NewSQLQueries() *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
