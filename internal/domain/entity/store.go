package entity

// Store representa una tienda. OwnerID referencia a un User con rol storeowner (no se verifica).
type Store struct {
	ID             string
	Name           string
	Street         string
	City           string
	State          string
	ZipCode        string
	PhoneNumber    string
	Email          string
	OwnerID        string
	OperatingHours string
	Website        string
}
