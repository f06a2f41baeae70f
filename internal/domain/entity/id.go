package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID genera un identificador nuevo (ObjectID hexadecimal de 24 caracteres).
// Se usa el mismo formato en todos los adaptadores para que la validación sea única.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID indica si id tiene el formato de un ObjectID.
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
