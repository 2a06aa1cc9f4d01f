package catalog

// Game is the presentation shape shared by curated entries and approved
// submissions. Curated games have no moderation status; they are built in and
// always public.
type Game struct {
	ID          string
	Title       string
	Description string
	URL         string
	Screenshot  string
}

// FeaturedCount curated games are highlighted at the top of the home page.
const FeaturedCount = 3

// Curated is the built-in catalog. Order is fixed; the first FeaturedCount
// entries are the featured strip.
var Curated = []Game{
	{
		ID:          "10",
		Title:       "Fly Pieter",
		Description: "A fun free-to-play MMO flight sim, 100% made with AI, without loading screens and GBs of updates every time you wanna play.",
		URL:         "https://fly.pieter.com",
		Screenshot:  "/screenshots/fly-pieter.png",
	},
	{
		ID:          "15",
		Title:       "FPS Warehouse",
		Description: "A first-person shooter game with WASD controls and shift to run.",
		URL:         "https://fps-warehouse.netlify.app/",
		Screenshot:  "/screenshots/fps-warehouse.png",
	},
	{
		ID:          "16",
		Title:       "3D Solar System",
		Description: "Interactive 3D model of our solar system. Use mouse to orbit and scroll to zoom.",
		URL:         "https://solarsystem.connekt.studio/",
		Screenshot:  "/screenshots/3d-solar-system.png",
	},
	{
		ID:          "18",
		Title:       "Polytrack",
		Description: "Interactive music experience.",
		URL:         "http://beta-polytrack.kodub.com",
		Screenshot:  "/screenshots/polytrack.png",
	},
	{
		ID:          "19",
		Title:       "Party",
		Description: "Social party game experience.",
		URL:         "https://party.wearezizo.com",
		Screenshot:  "/screenshots/party.png",
	},
	{
		ID:          "20",
		Title:       "Vibe Sail",
		Description: "Relaxing sailing experience.",
		URL:         "http://vibesail.com",
		Screenshot:  "/screenshots/vibe-sail.png",
	},
	{
		ID:          "1",
		Title:       "Kawaii Characters",
		Description: "Create and customize adorable kawaii characters in this fun interactive game.",
		URL:         "https://kawaiicharacters.pretzel.design",
		Screenshot:  "/screenshots/kawaii-characters.png",
	},
	{
		ID:          "14",
		Title:       "Pulsr Quanta",
		Description: "Navigate through quantum space as a Quantum Hatchling. Collect objectives, defeat enemies, and evolve your quantum entity.",
		URL:         "https://pulsrquanta.com",
		Screenshot:  "/screenshots/pulsr-quanta.png",
	},
}

// Featured returns the highlighted subset of the curated list.
func Featured() []Game {
	return Curated[:FeaturedCount]
}
