// Package checkout calcule les montants payables à partir des items du
// panier. Calcul pur, sans effet de bord : la vérité des prix reste en base.
package checkout

import "vastra_back_end/internal/models"

// EffectivePrice retourne le prix unitaire après remise.
// Une remise supérieure au prix n'est ni rejetée ni bornée : le montant
// résultant (nul ou négatif) est propagé tel quel.
func EffectivePrice(price, discount float64) float64 {
	if discount > 0 {
		return price - discount
	}
	return price
}

// LineSubtotal retourne le sous-total d'une ligne du panier.
func LineSubtotal(line models.CartLine) float64 {
	return EffectivePrice(line.Price, line.Discount) * float64(line.Quantity)
}

// CartTotal retourne le montant total payable pour l'ensemble du panier.
func CartTotal(lines []models.CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += LineSubtotal(line)
	}
	return total
}

// ItemTotal retourne le montant pour l'achat direct d'un seul produit.
func ItemTotal(price, discount float64, quantity int) float64 {
	return EffectivePrice(price, discount) * float64(quantity)
}
