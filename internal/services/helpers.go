package services

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

// mapNoDocuments translates the driver's no-documents sentinel into
// the service layer's not-found error.
func mapNoDocuments(err error) error {
	if err == mongo.ErrNoDocuments {
		return utils.ErrNotFound
	}
	return err
}
