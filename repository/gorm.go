// repository/gorm.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"partidas-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormPartidaRepository struct {
	DB *gorm.DB
}

func NewGormPartidaRepository(db *gorm.DB) *GormPartidaRepository {
	return &GormPartidaRepository{DB: db}
}

func (r *GormPartidaRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.Partida{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check partida %d exists: %w", id, err)
	}
	return count > 0, nil
}

func (r *GormPartidaRepository) FindByID(ctx context.Context, id int64) (models.Partida, error) {
	var p models.Partida
	if err := r.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Partida{}, ErrNotFound
		}
		return models.Partida{}, fmt.Errorf("find partida %d: %w", id, err)
	}
	return p, nil
}

func (r *GormPartidaRepository) Save(ctx context.Context, p *models.Partida) error {
	db := r.DB.WithContext(ctx)
	if p.ID == 0 {
		if err := db.Create(p).Error; err != nil {
			return fmt.Errorf("create partida: %w", err)
		}
		return nil
	}
	if err := db.Save(p).Error; err != nil {
		return fmt.Errorf("save partida %d: %w", p.ID, err)
	}
	return nil
}

func (r *GormPartidaRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.DB.WithContext(ctx).Delete(&models.Partida{}, id).Error; err != nil {
		return fmt.Errorf("delete partida %d: %w", id, err)
	}
	return nil
}

func (r *GormPartidaRepository) FindAll(ctx context.Context, criteria models.PartidaCriteria, pageable models.Pageable) (models.Page, error) {
	q, err := r.listQuery(ctx, criteria, pageable)
	if err != nil {
		return models.Page{}, err
	}
	total, err := r.Count(ctx, criteria)
	if err != nil {
		return models.Page{}, err
	}

	var content []models.Partida
	if err := q.Find(&content).Error; err != nil {
		return models.Page{}, fmt.Errorf("list partidas: %w", err)
	}

	return models.Page{
		Content:       content,
		Number:        pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
	}, nil
}

// listQuery applies criteria, the requested order and the page window.
// id always closes the order so LIMIT/OFFSET pages are stable.
func (r *GormPartidaRepository) listQuery(ctx context.Context, criteria models.PartidaCriteria, pageable models.Pageable) (*gorm.DB, error) {
	q := r.DB.WithContext(ctx).Model(&models.Partida{}).Scopes(withCriteria(criteria))

	byID := false
	for _, order := range pageable.Sort {
		column, ok := models.SortableFields[order.Field]
		if !ok {
			return nil, fmt.Errorf("unsupported sort field %q", order.Field)
		}
		byID = byID || column == "id"
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: order.Desc})
	}
	if !byID {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}

	return q.Offset(pageable.Offset()).Limit(pageable.Size), nil
}

func (r *GormPartidaRepository) Count(ctx context.Context, criteria models.PartidaCriteria) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Partida{}).Scopes(withCriteria(criteria)).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count partidas: %w", err)
	}
	return total, nil
}

func (r *GormPartidaRepository) FindByIDsOrderByGanador(ctx context.Context, ids []int64) ([]models.Partida, error) {
	out := []models.Partida{}
	if len(ids) == 0 {
		return out, nil
	}
	if err := r.byIDsQuery(ctx, ids).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list partidas by ids: %w", err)
	}
	return out, nil
}

func (r *GormPartidaRepository) byIDsQuery(ctx context.Context, ids []int64) *gorm.DB {
	return r.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "ganador"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

func withCriteria(c models.PartidaCriteria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = applyIntFilter(db, "id", c.ID)
		db = applyStringFilter(db, "ganador", c.Ganador)
		db = applyStringFilter(db, "perdedor", c.Perdedor)
		db = applyIntFilter(db, "puntos_del_ganador", c.PuntosDelGanador)
		return db
	}
}

// column names below come from a fixed list, never from the request.
func applyStringFilter(db *gorm.DB, column string, f models.StringFilter) *gorm.DB {
	if f.Equals != nil {
		db = db.Where(column+" = ?", *f.Equals)
	}
	if f.Contains != nil {
		db = db.Where("LOWER("+column+") LIKE ?", "%"+escapeLike(*f.Contains)+"%")
	}
	if len(f.In) > 0 {
		db = db.Where(column+" IN ?", f.In)
	}
	return db
}

func applyIntFilter(db *gorm.DB, column string, f models.IntFilter) *gorm.DB {
	if f.Equals != nil {
		db = db.Where(column+" = ?", *f.Equals)
	}
	if f.GreaterThan != nil {
		db = db.Where(column+" > ?", *f.GreaterThan)
	}
	if f.LessThan != nil {
		db = db.Where(column+" < ?", *f.LessThan)
	}
	if f.GreaterThanOrEqual != nil {
		db = db.Where(column+" >= ?", *f.GreaterThanOrEqual)
	}
	if f.LessThanOrEqual != nil {
		db = db.Where(column+" <= ?", *f.LessThanOrEqual)
	}
	if len(f.In) > 0 {
		db = db.Where(column+" IN ?", f.In)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(strings.ToLower(s))
}
