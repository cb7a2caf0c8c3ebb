// internal/domain/media.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaUpload records a demonstration video uploaded for a catalog movement.
// The object itself lives in S3-compatible storage; this is only metadata.
type MediaUpload struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MovementID  string             `bson:"movementId" json:"movementId"`
	ObjectKey   string             `bson:"objectKey" json:"objectKey"`
	FileName    string             `bson:"fileName,omitempty" json:"fileName,omitempty"`
	ContentType string             `bson:"contentType" json:"contentType"`
	UploadedBy  primitive.ObjectID `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
