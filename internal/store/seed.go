package store

import (
	"github.com/shopspring/decimal"

	"github.com/recaudosinternacionales24-oss/super-carnes/internal/model"
)

// SeedCatalogo loads the shop's starting catalog. The service keeps no
// durable storage, so every process boots with this inventory.
func SeedCatalogo(s *CatalogoStore) {
	seed := []model.Producto{
		{Nombre: "Lomo Fino Res", Categoria: model.CategoriaRes, PrecioCosto: decimal.NewFromInt(30000), PrecioVenta: decimal.NewFromInt(38000), Unidad: model.UnidadKg, Stock: decimal.NewFromInt(45)},
		{Nombre: "Punta de Anca", Categoria: model.CategoriaRes, PrecioCosto: decimal.NewFromInt(25000), PrecioVenta: decimal.NewFromInt(32000), Unidad: model.UnidadKg, Stock: decimal.NewFromInt(30)},
		{Nombre: "Costilla de Cerdo", Categoria: model.CategoriaCerdo, PrecioCosto: decimal.NewFromInt(18000), PrecioVenta: decimal.NewFromInt(24000), Unidad: model.UnidadKg, Stock: decimal.NewFromInt(60)},
		{Nombre: "Pechuga de Pollo", Categoria: model.CategoriaPollo, PrecioCosto: decimal.NewFromInt(14000), PrecioVenta: decimal.NewFromInt(18000), Unidad: model.UnidadKg, Stock: decimal.NewFromInt(100)},
		{Nombre: "Chorizo Santarrosano", Categoria: model.CategoriaEmbutidos, PrecioCosto: decimal.NewFromInt(10000), PrecioVenta: decimal.NewFromInt(15000), Unidad: model.UnidadUnidad, Stock: decimal.NewFromInt(80)},
		{Nombre: "Muchacho de Res", Categoria: model.CategoriaRes, PrecioCosto: decimal.NewFromInt(22000), PrecioVenta: decimal.NewFromInt(28000), Unidad: model.UnidadKg, Stock: decimal.NewFromInt(25)},
		{Nombre: "Bondiola de Cerdo", Categoria: model.CategoriaCerdo, PrecioCosto: decimal.NewFromInt(20000), PrecioVenta: decimal.NewFromInt(26000), Unidad: model.UnidadKg, Stock: decimal.NewFromInt(15)},
		{Nombre: "Alas de Pollo", Categoria: model.CategoriaPollo, PrecioCosto: decimal.NewFromInt(8500), PrecioVenta: decimal.NewFromInt(12000), Unidad: model.UnidadKg, Stock: decimal.NewFromInt(120)},
	}
	for _, p := range seed {
		s.Crear(p)
	}
}
