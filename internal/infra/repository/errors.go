package repository

import (
	"clinic-booking/internal/infra"
)

// wrap classifies a driver error and tags it for the use cases.
func wrap(msg string, err error) error {
	return infra.WrapRepoErr(nil, infra.Classify(err), msg, err)
}

func notFound(msg string) error {
	return infra.WrapRepoErr(nil, infra.KindNotFound, msg, nil)
}
