package artwork

import (
	"github.com/KirkDiggler/creature-forge/internal/entities"
)

// UploadDrawingInput defines the request for storing a drawing
type UploadDrawingInput struct {
	Session       *entities.Session
	EditSessionID string
	// RecordID targets an existing record directly, e.g. from the edit page
	RecordID string
	Data     []byte
}

// UploadDrawingOutput defines the response for storing a drawing
type UploadDrawingOutput struct {
	URL         string
	ContentType string
	// Creature is the record the URL was written to, nil when the editing
	// session has not saved yet
	Creature *entities.Creature
}

// DescribeDrawingInput defines the request for describing a drawing
type DescribeDrawingInput struct {
	Image []byte
	// Hint is optional text from the creator about the drawing
	Hint string
}

// DescribeDrawingOutput defines the response for describing a drawing
type DescribeDrawingOutput struct {
	Description string
}

// GenerateArtworkInput defines the request for painting finished artwork
type GenerateArtworkInput struct {
	Session       *entities.Session
	EditSessionID string
	RecordID      string
	// Description usually comes from DescribeDrawing
	Description string
	// Creature is the current form state; its attributes and desired
	// visual/personality text shape the prompt
	Creature *entities.Creature
}

// GenerateArtworkOutput defines the response for painting artwork
type GenerateArtworkOutput struct {
	URL    string
	Prompt string
	// Creature is the record the URL was written to, nil when the editing
	// session has not saved yet
	Creature *entities.Creature
}
