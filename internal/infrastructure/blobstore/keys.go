// Package blobstore implementa los repositorios de dominio sobre el puerto
// BlobStore (clave→JSON), con el patrón leer-colección-completa, mutar en
// memoria y escribir de vuelta. Cada repositorio serializa su ciclo
// leer-modificar-escribir con un mutex propio, preservando la corrección que
// el front-end original obtenía gratis de su único hilo.
package blobstore

// Claves del espacio de nombres del blob store. Heredadas del localStorage de
// la aplicación original; cambiarlas rompe los datos existentes.
const (
	KeyOrders        = "retailmaster_orders"
	KeyRefunds       = "retailmaster_refunds"
	KeyProducts      = "retailmaster_products"
	KeyCustomers     = "retailmaster_customers"
	KeyInventoryLogs = "retailmaster_inventory_logs"
)
