package product

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"vastra_back_end/internal/models"
)

// productForm est la forme typée du formulaire multipart d'administration.
// Toute la normalisation (champ scalaire vs liste à un élément, nombres,
// liste JSON des tailles) se fait ici, en une seule passe : les handlers
// ne touchent jamais aux maps brutes du formulaire.
type productForm struct {
	Name        string
	Description string
	Price       float64
	Discount    float64
	Category    string
	Sizes       []string
	Stock       string
	Image       *multipart.FileHeader
	SubImages   []*multipart.FileHeader
}

func firstValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func parseProductForm(form *multipart.Form) (*productForm, error) {
	pf := &productForm{
		Name:        firstValue(form.Value, "name"),
		Description: firstValue(form.Value, "description"),
		Category:    firstValue(form.Value, "category"),
		Stock:       firstValue(form.Value, "stock"),
	}

	if pf.Name == "" || pf.Description == "" || pf.Category == "" {
		return nil, errors.New("champs obligatoires manquants: name, description, category")
	}

	priceStr := firstValue(form.Value, "price")
	if priceStr == "" {
		return nil, errors.New("champ obligatoire manquant: price")
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return nil, errors.New("prix invalide")
	}
	pf.Price = price

	if discountStr := firstValue(form.Value, "discount"); discountStr != "" {
		discount, err := strconv.ParseFloat(discountStr, 64)
		if err != nil {
			return nil, errors.New("remise invalide")
		}
		// Remise ≥ prix acceptée telle quelle
		pf.Discount = discount
	}

	if sizesStr := firstValue(form.Value, "sizes"); sizesStr != "" {
		if err := json.Unmarshal([]byte(sizesStr), &pf.Sizes); err != nil {
			return nil, errors.New("liste de tailles invalide (JSON attendu)")
		}
	}
	if pf.Sizes == nil {
		pf.Sizes = []string{}
	}

	switch pf.Stock {
	case "":
		pf.Stock = models.StockIn
	case models.StockIn, models.StockOut:
	default:
		return nil, errors.New("valeur de stock invalide")
	}

	if files, ok := form.File["image"]; ok && len(files) > 0 {
		pf.Image = files[0]
	}
	pf.SubImages = form.File["subImages"]
	if len(pf.SubImages) == 0 {
		pf.SubImages = form.File["subImages[]"]
	}

	return pf, nil
}
