package admin_repo

import (
	"context"
	"promo_backend/internal/model"
	"promo_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "admins"
	colID           = "id"
	colName         = "name"
	colLogin        = "login"
	colPasswordHash = "password_hash"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewAdminRepository(dbc *pgxpool.Pool) repository.AdminRepository {
	return &repo{
		dbc: dbc,
	}
}

// CreateAdmin - создает администратора в БД.
// Возвращает ID созданной записи
func (r *repo) CreateAdmin(ctx context.Context, admin *model.Admin) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colLogin, colPasswordHash).
		Values(admin.Name, admin.Login, admin.Password).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetAdminByLogin - возвращает модель администратора по его логину
func (r *repo) GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error) {
	// Формируем запрос
	query := sq.Select(colID, colName, colLogin, colPasswordHash).
		From(table).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var admin model.Admin
	err = r.dbc.QueryRow(ctx, sqlStr, args...).Scan(&admin.ID, &admin.Name, &admin.Login, &admin.Password)
	if err != nil {
		return nil, err
	}

	return &admin, nil
}
