package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductStore define el puerto de la colección de catálogo en memoria (DIP).
// Es el único recurso mutable compartido: el resto del sistema solo consume
// proyecciones de solo lectura vía Snapshot.
type ProductStore interface {
	// UpsertMany mezcla items por id con política first-seen-wins: un id ya
	// presente es no-op para ese item. Devuelve cuántos se insertaron.
	UpsertMany(items []entity.Product) int
	// Add valida y crea un producto local: id = max(ids)+1 y se antepone a la
	// colección. El ID de fields se ignora.
	Add(fields entity.Product) (entity.Product, error)
	// Edit sobreescribe campo a campo los valores presentes en patch,
	// conservando ID y posición.
	Edit(id int, patch entity.ProductPatch) (entity.Product, error)
	// Delete elimina el producto; el orden del resto no cambia.
	Delete(id int) error
	// Snapshot devuelve una copia defensiva ordenada de la colección.
	Snapshot() []entity.Product
	// Size devuelve el tamaño actual (offset para la siguiente página remota).
	Size() int
}
