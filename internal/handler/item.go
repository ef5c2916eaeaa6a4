package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/barodex/barodex/internal/domain"
	"github.com/barodex/barodex/internal/logger"
	"github.com/barodex/barodex/internal/metrics"
	"github.com/barodex/barodex/internal/pricing"
	"github.com/barodex/barodex/internal/refdb"
)

// ItemSummary is one row of the item listing.
type ItemSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IngredientView is one input slot of a recipe, resolved for display. Tag
// inputs carry the tag text as their name and no id.
type IngredientView struct {
	ID        string                 `json:"id,omitempty"`
	Tag       string                 `json:"tag,omitempty"`
	Name      string                 `json:"name"`
	Amount    int                    `json:"amount"`
	Condition *domain.ConditionRange `json:"condition,omitempty"`
}

// ProducedView is one output slot of a deconstruction recipe.
type ProducedView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Amount       int      `json:"amount"`
	MinCondition *float64 `json:"min_condition,omitempty"`
}

// FabricateView is one fabrication recipe, resolved for display.
type FabricateView struct {
	SuitableFabricators []domain.Fabricator  `json:"suitable_fabricators"`
	Time                float64              `json:"time"`
	RequiredItems       []IngredientView     `json:"required_items"`
	RequiredSkills      map[domain.Skill]int `json:"required_skills,omitempty"`
	RequiresRecipe      bool                 `json:"requires_recipe"`
	Amount              int                  `json:"amount"`
}

// DeconstructView is one deconstruction recipe, resolved for display.
type DeconstructView struct {
	Time           float64              `json:"time"`
	RequiredItems  []IngredientView     `json:"required_items"`
	RequiredSkills map[domain.Skill]int `json:"required_skills,omitempty"`
	Items          []ProducedView       `json:"items"`
}

// ProcessView points at a recipe on another item's page.
type ProcessView struct {
	Kind     string `json:"kind"`
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Index    int    `json:"index"`
}

// StorePriceView is one store row of the pricing table.
type StorePriceView struct {
	Store string `json:"store"`
	Name  string `json:"name"`
	Buy   int    `json:"buy"`
	Sell  *int   `json:"sell,omitempty"`
}

// ItemView is the full item page payload.
type ItemView struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Fabricate   []FabricateView   `json:"fabricate,omitempty"`
	Deconstruct []DeconstructView `json:"deconstruct,omitempty"`
	UsedBy      []ProcessView     `json:"used_by,omitempty"`
	ProducedBy  []ProcessView     `json:"produced_by,omitempty"`
	Prices      []StorePriceView  `json:"prices,omitempty"`
}

// HandleListItems lists every item with its resolved display name
// @Summary List items
// @Description List all items in load order
// @Tags items
// @Produce json
// @Success 200 {array} ItemSummary
// @Router /api/v1/items [get]
func HandleListItems(db *refdb.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refs := db.Items()
		summaries := make([]ItemSummary, len(refs))
		for i, ref := range refs {
			summaries[i] = ItemSummary{ID: db.ItemID(ref), Name: db.DisplayName(ref)}
		}
		respondJSON(w, http.StatusOK, summaries)
	}
}

// HandleGetItem renders the full item page payload
// @Summary Get one item
// @Description Full item view: recipes, cross-references, pricing
// @Tags items
// @Produce json
// @Param id path string true "Item identifier"
// @Success 200 {object} ItemView
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{id} [get]
func HandleGetItem(db *refdb.Database) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		id := chi.URLParam(r, "id")

		ref, ok := db.NewItemRef(id)
		if !ok {
			metrics.ItemLookups.WithLabelValues(metrics.OutcomeNotFound).Inc()
			log.Info("Item not found", "id", id)
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}
		metrics.ItemLookups.WithLabelValues(metrics.OutcomeFound).Inc()

		respondJSON(w, http.StatusOK, buildItemView(db, ref))
	}
}

func buildItemView(db *refdb.Database, ref refdb.ItemRef) ItemView {
	item := db.GetItem(ref)

	view := ItemView{
		ID:   item.ID,
		Name: db.DisplayName(ref),
	}

	for _, fabricate := range item.Fabricate {
		view.Fabricate = append(view.Fabricate, FabricateView{
			SuitableFabricators: fabricate.SuitableFabricators,
			Time:                fabricate.Time,
			RequiredItems:       ingredientViews(db, fabricate.RequiredItems),
			RequiredSkills:      fabricate.RequiredSkills,
			RequiresRecipe:      fabricate.RequiresRecipe,
			Amount:              fabricate.Amount,
		})
	}

	for _, deconstruct := range item.Deconstruct {
		produced := make([]ProducedView, len(deconstruct.Items))
		for i, out := range deconstruct.Items {
			produced[i] = ProducedView{
				ID:           out.ID,
				Name:         resolveName(db, out.ID),
				Amount:       out.Amount,
				MinCondition: out.MinCondition,
			}
		}
		view.Deconstruct = append(view.Deconstruct, DeconstructView{
			Time:           deconstruct.Time,
			RequiredItems:  ingredientViews(db, deconstruct.RequiredItems),
			RequiredSkills: deconstruct.RequiredSkills,
			Items:          produced,
		})
	}

	if usedBy, ok := db.GetUsedBy(ref); ok {
		view.UsedBy = processViews(db, usedBy)
	}
	if producedBy, ok := db.GetProducedBy(ref); ok {
		view.ProducedBy = processViews(db, producedBy)
	}

	if item.Price != nil {
		for _, store := range domain.TrackedStores {
			summary := pricing.Summarize(item.Price, store)
			view.Prices = append(view.Prices, StorePriceView{
				Store: string(store),
				Name:  db.StoreName(store),
				Buy:   summary.Buy,
				Sell:  summary.Sell,
			})
		}
	}

	return view
}

func ingredientViews(db *refdb.Database, inputs []domain.RequiredItem) []IngredientView {
	views := make([]IngredientView, len(inputs))
	for i, input := range inputs {
		view := IngredientView{
			Amount:    input.Amount,
			Condition: input.Condition,
		}
		if input.Item.IsTag() {
			view.Tag = input.Item.Tag
			view.Name = input.Item.Tag
		} else {
			view.ID = input.Item.ID
			view.Name = resolveName(db, input.Item.ID)
		}
		views[i] = view
	}
	return views
}

func processViews(db *refdb.Database, refs []refdb.ProcessRef) []ProcessView {
	views := make([]ProcessView, len(refs))
	for i, ref := range refs {
		views[i] = ProcessView{
			Kind:     ref.Kind.String(),
			ItemID:   db.ItemID(ref.Item),
			ItemName: db.DisplayName(ref.Item),
			Index:    ref.Index,
		}
	}
	return views
}

// resolveName returns the display name for an id mentioned inside a
// recipe, falling back to the id itself when it names no loaded item.
func resolveName(db *refdb.Database, id string) string {
	if ref, ok := db.NewItemRef(id); ok {
		return db.DisplayName(ref)
	}
	return id
}
