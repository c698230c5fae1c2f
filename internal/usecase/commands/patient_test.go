//go:build unit

package commands_test

import (
	"context"
	"testing"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/ptr"
	"clinic-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) patientCommands() commands.PatientCommands {
	return commands.NewPatientCommands(f.store, f.cache, f.clock)
}

func TestUpdateProfile(t *testing.T) {
	t.Run("patient updates own mobile only", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.patientCommands().UpdateProfile(context.Background(), f.anna.BuildActor(), f.anna.ID, commands.ProfileInput{
			Mobile: ptr.To("+48 700 800 900"),
		})

		require.NoError(t, err)
		assert.Equal(t, "+48 700 800 900", view.Mobile)
		assert.Equal(t, "Anna", view.FirstName)
		assert.Equal(t, now, view.UpdatedAt)
	})

	t.Run("administrator updates any patient", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.patientCommands().UpdateProfile(context.Background(), f.admin.BuildActor(), f.piotr.ID, commands.ProfileInput{
			LastName: ptr.To("Nowak-Zielinski"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Nowak-Zielinski", view.LastName)
	})

	t.Run("patient cannot update another patient", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.patientCommands().UpdateProfile(context.Background(), f.anna.BuildActor(), f.piotr.ID, commands.ProfileInput{
			FirstName: ptr.To("Mallory"),
		})

		assert.True(t, errs.Is(err, commands.ErrForbidden))
	})

	t.Run("invalid value", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.patientCommands().UpdateProfile(context.Background(), f.anna.BuildActor(), f.anna.ID, commands.ProfileInput{
			FirstName: ptr.To(""),
		})

		assert.True(t, errs.Is(err, commands.ErrInvalidPatient))
	})

	t.Run("unknown patient", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.patientCommands().UpdateProfile(context.Background(), f.admin.BuildActor(), uuid.New(), commands.ProfileInput{})

		assert.True(t, errs.Is(err, commands.ErrPatientNotFound))
	})
}

func TestDeletePatient(t *testing.T) {
	t.Run("frees the patient's slots", func(t *testing.T) {
		f := newFixture(t)
		f.seedVisit(t, f.anna, monday, 10)
		f.seedVisit(t, f.anna, tuesday, 11)

		require.NoError(t, f.patientCommands().Delete(context.Background(), f.admin.BuildActor(), f.anna.ID))

		assert.Equal(t, hours(10, 18), f.available(t, monday))
		assert.Equal(t, hours(10, 18), f.available(t, tuesday))
		assert.ElementsMatch(t, []calendar.Date{monday, tuesday}, f.cache.Invalidated())

		_, err := f.store.Reads().Patients().FindByID(context.Background(), f.anna.ID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("patient deletes own account", func(t *testing.T) {
		f := newFixture(t)

		require.NoError(t, f.patientCommands().Delete(context.Background(), f.anna.BuildActor(), f.anna.ID))
		assert.Empty(t, f.cache.Invalidated())
	})

	t.Run("patient cannot delete another patient", func(t *testing.T) {
		f := newFixture(t)

		err := f.patientCommands().Delete(context.Background(), f.anna.BuildActor(), f.piotr.ID)

		assert.True(t, errs.Is(err, commands.ErrForbidden))
	})

	t.Run("administrator account is protected", func(t *testing.T) {
		f := newFixture(t)

		err := f.patientCommands().Delete(context.Background(), f.admin.BuildActor(), f.admin.ID)

		assert.True(t, errs.Is(err, commands.ErrForbidden))
	})
}
