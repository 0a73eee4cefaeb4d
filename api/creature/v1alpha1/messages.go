package creaturev1alpha1

import (
	"time"
)

// Ability is one ability slot
type Ability struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LevelUpMove is a move learned at a level
type LevelUpMove struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Creature is the wire form of a creature record. Optional attributes are
// omitted when unset.
type Creature struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	SpeciesNumber *int    `json:"species_number,omitempty"`
	Category      *string `json:"category,omitempty"`
	TypePrimary   *string `json:"type_primary,omitempty"`
	TypeSecondary *string `json:"type_secondary,omitempty"`
	Color         *string `json:"color,omitempty"`

	Height     *float64 `json:"height,omitempty"`
	HeightUnit *string  `json:"height_unit,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	WeightUnit *string  `json:"weight_unit,omitempty"`
	BodyShape  *string  `json:"body_shape,omitempty"`
	Lore       *string  `json:"lore,omitempty"`

	HP        *int `json:"hp,omitempty"`
	Attack    *int `json:"attack,omitempty"`
	Defense   *int `json:"defense,omitempty"`
	SpAttack  *int `json:"sp_attack,omitempty"`
	SpDefense *int `json:"sp_defense,omitempty"`
	Speed     *int `json:"speed,omitempty"`
	// TotalStats is computed by the server
	TotalStats int `json:"total_stats,omitempty"`

	Ability1      *Ability `json:"ability1,omitempty"`
	Ability2      *Ability `json:"ability2,omitempty"`
	Ability3      *Ability `json:"ability3,omitempty"`
	HiddenAbility *Ability `json:"hidden_ability,omitempty"`

	EvolutionStage   *string `json:"evolution_stage,omitempty"`
	EvolvesFrom      *string `json:"evolves_from,omitempty"`
	EvolvesInto      *string `json:"evolves_into,omitempty"`
	EvolutionTrigger *string `json:"evolution_trigger,omitempty"`

	EggGroup1        *string `json:"egg_group1,omitempty"`
	EggGroup2        *string `json:"egg_group2,omitempty"`
	Genderless       bool    `json:"genderless,omitempty"`
	MalePercentage   *int    `json:"male_percentage,omitempty"`
	FemalePercentage *int    `json:"female_percentage,omitempty"`

	CatchRate      *int    `json:"catch_rate,omitempty"`
	BaseFriendship *int    `json:"base_friendship,omitempty"`
	GrowthRate     *string `json:"growth_rate,omitempty"`

	LevelUpMoves []LevelUpMove `json:"level_up_moves,omitempty"`
	TMMoves      []string      `json:"tm_moves,omitempty"`
	EggMoves     []string      `json:"egg_moves,omitempty"`

	OriginalDrawingURL  *string `json:"original_drawing_url,omitempty"`
	AIGeneratedImageURL *string `json:"ai_generated_image_url,omitempty"`
	DesiredVisual       *string `json:"desired_visual,omitempty"`
	DesiredPersonality  *string `json:"desired_personality,omitempty"`

	// Read-only bookkeeping
	Status    string     `json:"status,omitempty"`
	OwnerID   string     `json:"owner_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// User is the public form of an account
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// Session is a logged-in session; Token is sent back as a bearer token
type Session struct {
	Token       string `json:"token"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type RegisterResponse struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Session *Session `json:"session"`
}

// LogoutRequest ends the session named by the call's bearer token
type LogoutRequest struct{}

type LogoutResponse struct{}

// SaveRequest persists an editing session's form state. It is used by
// CreateCreature, SaveDraft, Autosave and SubmitCreature.
type SaveRequest struct {
	EditSessionID string    `json:"edit_session_id,omitempty"`
	Creature      *Creature `json:"creature"`
}

type SaveResponse struct {
	Creature *Creature `json:"creature"`
	Created  bool      `json:"created,omitempty"`
}

// AutosaveResponse never carries an RPC error for a failed save; Status is
// "error" and Message says what went wrong
type AutosaveResponse struct {
	Status   string    `json:"status"`
	Creature *Creature `json:"creature,omitempty"`
	Skipped  bool      `json:"skipped,omitempty"`
	Message  string    `json:"message,omitempty"`
}

type GetCreatureRequest struct {
	ID string `json:"id"`
}

type GetCreatureResponse struct {
	Creature *Creature `json:"creature"`
}

type UpdateCreatureRequest struct {
	Creature *Creature `json:"creature"`
}

type UpdateCreatureResponse struct {
	Creature *Creature `json:"creature"`
}

type DeleteCreatureRequest struct {
	ID      string `json:"id"`
	Confirm bool   `json:"confirm"`
}

type DeleteCreatureResponse struct{}

type ListCreaturesRequest struct {
	Type      string `json:"type,omitempty"`
	OwnerID   string `json:"owner_id,omitempty"`
	// Mine restricts the list to the caller's creatures
	Mine      bool   `json:"mine,omitempty"`
	Status    string `json:"status,omitempty"`
	NameQuery string `json:"name_query,omitempty"`
	Sort      string `json:"sort,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
	PageToken string `json:"page_token,omitempty"`
}

type ListCreaturesResponse struct {
	Creatures     []*Creature `json:"creatures"`
	NextPageToken string      `json:"next_page_token,omitempty"`
	TotalSize     int         `json:"total_size"`
}

type GetEditSessionRequest struct {
	EditSessionID string `json:"edit_session_id"`
}

type GetEditSessionResponse struct {
	RecordID string `json:"record_id"`
}

// UploadDrawingRequest carries the raw image; JSON encodes it as base64
type UploadDrawingRequest struct {
	EditSessionID string `json:"edit_session_id,omitempty"`
	RecordID      string `json:"record_id,omitempty"`
	Image         []byte `json:"image"`
}

type UploadDrawingResponse struct {
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Creature    *Creature `json:"creature,omitempty"`
}

type DescribeDrawingRequest struct {
	Image []byte `json:"image"`
	Hint  string `json:"hint,omitempty"`
}

type DescribeDrawingResponse struct {
	Description string `json:"description"`
}

type GenerateArtworkRequest struct {
	EditSessionID string    `json:"edit_session_id,omitempty"`
	RecordID      string    `json:"record_id,omitempty"`
	Description   string    `json:"description,omitempty"`
	Creature      *Creature `json:"creature,omitempty"`
}

type GenerateArtworkResponse struct {
	URL      string    `json:"url"`
	Prompt   string    `json:"prompt"`
	Creature *Creature `json:"creature,omitempty"`
}
