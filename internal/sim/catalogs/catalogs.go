package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

type Catalogs struct {
	Items    ItemCatalog
	Recipes  RecipeCatalog
	Stations StationCatalog
}

type ItemCatalog struct {
	Palette []string
	Index   map[string]uint16
	Defs    map[string]ItemDef
	Digest  string
}

type ItemDef struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"display_name"`
	Description string `json:"description,omitempty"`
	Kind        string `json:"kind"` // "GENERIC","CONSUMABLE","EQUIPMENT","QUEST"
	MaxStack    int    `json:"max_stack"`
}

type RecipeCatalog struct {
	ByID   map[string]RecipeDef
	Digest string
}

type Ingredient struct {
	Item   string `json:"item"`
	Amount int    `json:"amount"`
}

type RecipeDef struct {
	RecipeID     string       `json:"recipe_id"`
	Ingredients  []Ingredient `json:"ingredients"`
	Result       string       `json:"result"`
	ResultAmount int          `json:"result_amount"`
}

type StationCatalog struct {
	ByID   map[string]StationDef
	Digest string
}

// StationDef lists recipe IDs in priority order: when several recipes are
// satisfiable at once the earliest listed one wins.
type StationDef struct {
	StationID string   `json:"station_id"`
	Recipes   []string `json:"recipes"`
}

var itemKinds = map[string]struct{}{
	"GENERIC":    {},
	"CONSUMABLE": {},
	"EQUIPMENT":  {},
	"QUEST":      {},
}

func Load(configDir string) (*Catalogs, error) {
	var c Catalogs

	if err := loadItems(filepath.Join(configDir, "items.json"), &c.Items); err != nil {
		return nil, err
	}
	if err := loadRecipes(filepath.Join(configDir, "recipes.json"), &c.Recipes); err != nil {
		return nil, err
	}
	if err := loadStations(filepath.Join(configDir, "stations.json"), &c.Stations); err != nil {
		return nil, err
	}
	if err := crossValidate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// RecipesFor resolves a station's recipe list in catalog order.
func (c *Catalogs) RecipesFor(stationID string) ([]RecipeDef, bool) {
	st, ok := c.Stations.ByID[stationID]
	if !ok {
		return nil, false
	}
	out := make([]RecipeDef, 0, len(st.Recipes))
	for _, id := range st.Recipes {
		if r, ok := c.Recipes.ByID[id]; ok {
			out = append(out, r)
		}
	}
	return out, true
}

func sha256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func loadItems(path string, out *ItemCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateSchema("items.schema.json", raw); err != nil {
		return fmt.Errorf("items.json: %w", err)
	}
	out.Digest = sha256Hex(raw)

	var defs []ItemDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("items.json: %w", err)
	}
	out.Defs = map[string]ItemDef{}
	for _, d := range defs {
		if d.ID == "" {
			// Data files may omit the id; every item still gets a
			// stable identity for the process lifetime.
			d.ID = uuid.NewString()
		}
		if strings.TrimSpace(d.DisplayName) == "" {
			return fmt.Errorf("items.json: item %q: empty display_name", d.ID)
		}
		if _, ok := itemKinds[d.Kind]; !ok {
			return fmt.Errorf("items.json: item %q: unknown kind %q", d.ID, d.Kind)
		}
		if d.MaxStack < 1 {
			return fmt.Errorf("items.json: item %q: invalid max_stack=%d", d.ID, d.MaxStack)
		}
		if _, ok := out.Defs[d.ID]; ok {
			return fmt.Errorf("items.json: duplicate id %q", d.ID)
		}
		out.Defs[d.ID] = d
	}

	ids := make([]string, 0, len(out.Defs))
	for id := range out.Defs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out.Palette = ids
	out.Index = make(map[string]uint16, len(ids))
	for i, id := range ids {
		out.Index[id] = uint16(i)
	}
	return nil
}

func loadRecipes(path string, out *RecipeCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateSchema("recipes.schema.json", raw); err != nil {
		return fmt.Errorf("recipes.json: %w", err)
	}
	out.Digest = sha256Hex(raw)

	var defs []RecipeDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("recipes.json: %w", err)
	}
	out.ByID = map[string]RecipeDef{}
	for _, r := range defs {
		if r.RecipeID == "" {
			return fmt.Errorf("recipes.json: empty recipe_id")
		}
		if _, ok := out.ByID[r.RecipeID]; ok {
			return fmt.Errorf("recipes.json: duplicate recipe_id %q", r.RecipeID)
		}
		out.ByID[r.RecipeID] = r
	}
	return nil
}

func loadStations(path string, out *StationCatalog) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateSchema("stations.schema.json", raw); err != nil {
		return fmt.Errorf("stations.json: %w", err)
	}
	out.Digest = sha256Hex(raw)

	var defs []StationDef
	if err := json.Unmarshal(raw, &defs); err != nil {
		return fmt.Errorf("stations.json: %w", err)
	}
	out.ByID = map[string]StationDef{}
	for _, s := range defs {
		if s.StationID == "" {
			return fmt.Errorf("stations.json: empty station_id")
		}
		if _, ok := out.ByID[s.StationID]; ok {
			return fmt.Errorf("stations.json: duplicate station_id %q", s.StationID)
		}
		out.ByID[s.StationID] = s
	}
	return nil
}

func crossValidate(c *Catalogs) error {
	ids := make([]string, 0, len(c.Recipes.ByID))
	for id := range c.Recipes.ByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		r := c.Recipes.ByID[id]
		if len(r.Ingredients) == 0 {
			return fmt.Errorf("recipe %q: missing ingredients", r.RecipeID)
		}
		if r.Result == "" {
			return fmt.Errorf("recipe %q: missing result", r.RecipeID)
		}
		if _, ok := c.Items.Defs[r.Result]; !ok {
			return fmt.Errorf("recipe %q: unknown result item %q", r.RecipeID, r.Result)
		}
		if r.ResultAmount < 1 {
			return fmt.Errorf("recipe %q: invalid result_amount=%d", r.RecipeID, r.ResultAmount)
		}
		seen := map[string]struct{}{}
		for _, ing := range r.Ingredients {
			if _, ok := c.Items.Defs[ing.Item]; !ok {
				return fmt.Errorf("recipe %q: unknown ingredient item %q", r.RecipeID, ing.Item)
			}
			if ing.Amount < 1 {
				return fmt.Errorf("recipe %q: ingredient %q: invalid amount=%d", r.RecipeID, ing.Item, ing.Amount)
			}
			if _, dup := seen[ing.Item]; dup {
				return fmt.Errorf("recipe %q: duplicate ingredient %q", r.RecipeID, ing.Item)
			}
			seen[ing.Item] = struct{}{}
		}
	}

	sids := make([]string, 0, len(c.Stations.ByID))
	for id := range c.Stations.ByID {
		sids = append(sids, id)
	}
	sort.Strings(sids)

	for _, id := range sids {
		s := c.Stations.ByID[id]
		if len(s.Recipes) == 0 {
			return fmt.Errorf("station %q: missing recipes", s.StationID)
		}
		for _, rid := range s.Recipes {
			if _, ok := c.Recipes.ByID[rid]; !ok {
				return fmt.Errorf("station %q: unknown recipe %q", s.StationID, rid)
			}
		}
	}
	return nil
}
