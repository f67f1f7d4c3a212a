package infra

import (
	"fmt"

	"agronat/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDatabase opens the Postgres connection, runs the schema migration and
// creates the sale id sequence the ledger allocates from.
func NewDatabase(dsn string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("abrir conexion a postgres: %w", err)
	}

	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return nil, fmt.Errorf("habilitar pgcrypto: %w", err)
	}

	err = db.AutoMigrate(
		&model.Usuario{},
		&model.Proveedor{},
		&model.Medida{},
		&model.CategoriaProducto{},
		&model.Producto{},
		&model.Venta{},
		&model.VentaItem{},
		&model.Servicio{},
		&model.CategoriaServicio{},
		&model.Trabajo{},
		&model.TrabajoServicio{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}

	// The public sale id comes from this sequence so that concurrent sales
	// can never allocate the same number.
	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS ventas_sale_id_seq START 1").Error; err != nil {
		return nil, fmt.Errorf("crear secuencia de ventas: %w", err)
	}

	log.Info().Msg("base de datos lista")
	return db, nil
}
