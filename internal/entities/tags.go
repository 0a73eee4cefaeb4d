package entities

// Elemental types
const (
	TypeNormal   = "Normal"
	TypeFire     = "Fire"
	TypeWater    = "Water"
	TypeGrass    = "Grass"
	TypeElectric = "Electric"
	TypeIce      = "Ice"
	TypeFighting = "Fighting"
	TypePoison   = "Poison"
	TypeGround   = "Ground"
	TypeFlying   = "Flying"
	TypePsychic  = "Psychic"
	TypeBug      = "Bug"
	TypeRock     = "Rock"
	TypeGhost    = "Ghost"
	TypeDragon   = "Dragon"
	TypeDark     = "Dark"
	TypeSteel    = "Steel"
	TypeFairy    = "Fairy"
)

// DefaultStubType is the elemental type given to records created only to
// complete an evolution link.
const DefaultStubType = TypeNormal

// ElementalTypes lists every valid elemental type
var ElementalTypes = []string{
	TypeNormal, TypeFire, TypeWater, TypeGrass, TypeElectric, TypeIce,
	TypeFighting, TypePoison, TypeGround, TypeFlying, TypePsychic, TypeBug,
	TypeRock, TypeGhost, TypeDragon, TypeDark, TypeSteel, TypeFairy,
}

// BodyShapes lists the body-shape tags
var BodyShapes = []string{
	"head", "serpentine", "fins", "head-arms", "head-base", "bipedal-tail",
	"head-legs", "quadruped", "wings", "tentacles", "multiple-bodies",
	"humanoid", "bug-wings", "armor",
}

// EggGroups lists the breeding egg groups
var EggGroups = []string{
	"Monster", "Water 1", "Bug", "Flying", "Field", "Fairy", "Grass",
	"Human-Like", "Water 3", "Mineral", "Amorphous", "Water 2", "Ditto",
	"Dragon", "Undiscovered",
}

// GrowthRates lists the experience growth curves
var GrowthRates = []string{
	"Erratic", "Fast", "Medium Fast", "Medium Slow", "Slow", "Fluctuating",
}

// EvolutionStages lists the evolution stage tags
var EvolutionStages = []string{
	"Basic", "Stage 1", "Stage 2", "Baby", "Mega",
}

// HeightUnits and WeightUnits list the accepted measurement units
var (
	HeightUnits = []string{"m", "ft"}
	WeightUnits = []string{"kg", "lbs"}
)
