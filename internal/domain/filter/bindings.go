package filter

// Campos filtrables de cada colección. Field es el nombre del campo almacenado.

// CandyBindings parámetros de GET /candy.
var CandyBindings = []Binding{
	{Param: "name", Field: "name"},
	{Param: "description", Field: "description"},
	{Param: "container", Field: "shipping_container"},
	{Param: "shipping_container", Field: "shipping_container"},
	{Param: "supplier_name", Field: "supplier_name"},
}

// StoreBindings parámetros de GET /stores. "phone" es alias de "phone_number".
var StoreBindings = []Binding{
	{Param: "name", Field: "name"},
	{Param: "street", Field: "street"},
	{Param: "city", Field: "city"},
	{Param: "state", Field: "state"},
	{Param: "zip_code", Field: "zip_code"},
	{Param: "phone_number", Field: "phone_number"},
	{Param: "phone", Field: "phone_number"},
	{Param: "email", Field: "email"},
	{Param: "owner_id", Field: "owner_id"},
	{Param: "operating_hours", Field: "operating_hours"},
	{Param: "website", Field: "website"},
}

// OrderBindings parámetros de GET /orders.
var OrderBindings = []Binding{
	{Param: "customerName", Field: "customerName"},
	{Param: "status", Field: "status"},
}

// OrderOwnerField campo de propiedad usado por la guarda de pedidos.
const OrderOwnerField = "customerId"
