package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/restockd/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListContacts(ctx context.Context) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	query := `SELECT supplier_id, supplier_name, contact_name, email, phone FROM suppliers`
	err := r.DB.SelectContext(ctx, &suppliers, query)
	return suppliers, err
}

func (r *PGRepository) ListOptions(ctx context.Context) ([]model.SupplierOption, error) {
	options := []model.SupplierOption{}
	query := `SELECT supplier_id, supplier_name FROM suppliers ORDER BY supplier_name ASC`
	err := r.DB.SelectContext(ctx, &options, query)
	return options, err
}
