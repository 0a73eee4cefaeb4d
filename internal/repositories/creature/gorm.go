package creature

import (
	"context"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KirkDiggler/creature-forge/internal/entities"
	"github.com/KirkDiggler/creature-forge/internal/errors"
)

const (
	errCreatureNil   = "creature cannot be nil"
	errCreatureIDNil = "creature ID cannot be empty"
	errIDEmpty       = "ID cannot be empty"
	errNameEmpty     = "name cannot be empty"
)

// Columns kept from the first insert when a record is replaced
var immutableColumns = []string{"id", "created_at", "owner_id"}

// Upsert never moves a record back to draft and never clears an image
// reference, so a late autosave cannot undo a submit or an upload.
var stickyUpsertColumns = map[string]clause.Expr{
	"status": gorm.Expr("CASE WHEN creatures.status = ? THEN creatures.status ELSE excluded.status END",
		string(entities.StatusPublished)),
	"original_drawing_url":   gorm.Expr("COALESCE(excluded.original_drawing_url, creatures.original_drawing_url)"),
	"ai_generated_image_url": gorm.Expr("COALESCE(excluded.ai_generated_image_url, creatures.ai_generated_image_url)"),
}

var sortOrders = map[string]string{
	"":                "created_at DESC, id DESC",
	SortNewest:        "created_at DESC, id DESC",
	SortOldest:        "created_at ASC, id ASC",
	SortName:          "name_key ASC, created_at ASC",
	SortSpeciesNumber: "species_number IS NULL, species_number ASC, created_at ASC",
}

type gormRepository struct {
	db             *gorm.DB
	mutableColumns []string
	upsertSet      clause.Set
}

// GormConfig holds the dependencies for the gorm repository
type GormConfig struct {
	DB *gorm.DB
}

// Validate ensures all required dependencies are provided
func (c *GormConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DB == nil {
		vb.RequiredField("DB")
	}
	return vb.Build()
}

// Migrate creates or updates the creatures table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&creatureRow{}); err != nil {
		return err
	}

	// Rows written before name_key existed get their key filled in once
	var rows []creatureRow
	return db.Select("id", "name").
		Where("name_key = '' AND name <> ''").
		FindInBatches(&rows, 200, func(tx *gorm.DB, _ int) error {
			for i := range rows {
				err := tx.Model(&creatureRow{}).
					Where("id = ?", rows[i].ID).
					Update("name_key", entities.NameKey(rows[i].Name)).Error
				if err != nil {
					return err
				}
			}
			return nil
		}).Error
}

// NewGormRepository creates a creature repository on a relational database.
// The schema must already be migrated.
func NewGormRepository(cfg *GormConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	stmt := &gorm.Statement{DB: cfg.DB}
	if err := stmt.Parse(&creatureRow{}); err != nil {
		return nil, errors.Wrap(err, "failed to parse creature schema")
	}

	var mutable []string
	for _, name := range stmt.Schema.DBNames {
		if !contains(immutableColumns, name) {
			mutable = append(mutable, name)
		}
	}

	var plain []string
	var sticky clause.Set
	for _, name := range mutable {
		if expr, ok := stickyUpsertColumns[name]; ok {
			sticky = append(sticky, clause.Assignment{Column: clause.Column{Name: name}, Value: expr})
			continue
		}
		plain = append(plain, name)
	}

	return &gormRepository{
		db:             cfg.DB,
		mutableColumns: mutable,
		upsertSet:      append(clause.AssignmentColumns(plain), sticky...),
	}, nil
}

func (r *gormRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if err := validateCreature(input.Creature); err != nil {
		return nil, err
	}

	row := toRow(input.Creature)
	stampTimes(row)

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.AlreadyExistsf("creature %s already exists", row.ID)
		}
		return nil, errors.Wrapf(err, "failed to create creature %s", row.ID)
	}

	return &CreateOutput{Creature: fromRow(row)}, nil
}

func (r *gormRepository) Upsert(ctx context.Context, input *UpsertInput) (*UpsertOutput, error) {
	if err := validateCreature(input.Creature); err != nil {
		return nil, err
	}

	row := toRow(input.Creature)
	stampTimes(row)

	var (
		stored  creatureRow
		created bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&creatureRow{}).Where("id = ?", row.ID).Count(&existing).Error; err != nil {
			return err
		}
		created = existing == 0

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: r.upsertSet,
		}).Create(row).Error
		if err != nil {
			return err
		}

		return tx.First(&stored, "id = ?", row.ID).Error
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert creature %s", row.ID)
	}

	return &UpsertOutput{Creature: fromRow(&stored), Created: created}, nil
}

func (r *gormRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var row creatureRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", input.ID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("creature %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get creature %s", input.ID)
	}

	return &GetOutput{Creature: fromRow(&row)}, nil
}

func (r *gormRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if err := validateCreature(input.Creature); err != nil {
		return nil, err
	}

	row := toRow(input.Creature)
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}

	var stored creatureRow
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&creatureRow{}).
			Where("id = ?", row.ID).
			Select(r.mutableColumns).
			Updates(row)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NotFoundf("creature %s not found", row.ID)
		}
		return tx.First(&stored, "id = ?", row.ID).Error
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to update creature %s", row.ID)
	}

	return &UpdateOutput{Creature: fromRow(&stored)}, nil
}

func (r *gormRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	result := r.db.WithContext(ctx).Delete(&creatureRow{}, "id = ?", input.ID)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to delete creature %s", input.ID)
	}
	if result.RowsAffected == 0 {
		return nil, errors.NotFoundf("creature %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *gormRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	order, ok := sortOrders[input.Sort]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown sort %q", input.Sort)
	}

	pageSize := input.PageSize
	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}

	offset := 0
	if input.PageToken != "" {
		n, err := strconv.Atoi(input.PageToken)
		if err != nil || n < 0 {
			return nil, errors.InvalidArgumentf("invalid page token %q", input.PageToken)
		}
		offset = n
	}

	filter := listFilter(input)

	var total int64
	if err := r.db.WithContext(ctx).Model(&creatureRow{}).Scopes(filter).Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count creatures")
	}

	var rows []creatureRow
	err := r.db.WithContext(ctx).
		Scopes(filter).
		Order(order).
		Limit(pageSize + 1).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list creatures")
	}

	output := &ListOutput{TotalSize: int(total)}
	if len(rows) > pageSize {
		rows = rows[:pageSize]
		output.NextPageToken = strconv.Itoa(offset + pageSize)
	}
	output.Creatures = make([]*entities.Creature, 0, len(rows))
	for i := range rows {
		output.Creatures = append(output.Creatures, fromRow(&rows[i]))
	}

	return output, nil
}

func (r *gormRepository) FindByName(ctx context.Context, input *FindByNameInput) (*FindByNameOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	query := r.db.WithContext(ctx).Where("name_key = ?", entities.NameKey(name))
	switch {
	case input.OwnerlessOnly:
		query = query.Where("(owner_id IS NULL OR owner_id = '')")
	case input.OwnerID != "":
		query = query.Where("(owner_id = ? OR owner_id IS NULL OR owner_id = '')", input.OwnerID)
	}

	var row creatureRow
	err := query.Order("created_at ASC, id ASC").First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFoundf("creature named %q not found", name)
		}
		return nil, errors.Wrapf(err, "failed to find creature named %q", name)
	}

	return &FindByNameOutput{Creature: fromRow(&row)}, nil
}

func listFilter(input *ListInput) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if input.Type != "" {
			db = db.Where("(type_primary = ? OR type_secondary = ?)", input.Type, input.Type)
		}
		if input.OwnerID != "" {
			db = db.Where("owner_id = ?", input.OwnerID)
		}
		if input.Status != "" {
			db = db.Where("status = ?", string(input.Status))
		}
		if q := strings.TrimSpace(input.NameQuery); q != "" {
			db = db.Where(`name_key LIKE ? ESCAPE '\'`, "%"+escapeLike(entities.NameKey(q))+"%")
		}
		return db
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func validateCreature(c *entities.Creature) error {
	if c == nil {
		return errors.InvalidArgument(errCreatureNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCreatureIDNil)
	}
	return nil
}

func stampTimes(row *creatureRow) {
	now := time.Now().UTC()
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
