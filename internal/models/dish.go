package models

import "math/rand"

// DishType represents a dish on the quantum menu. It is cosmetic: the dish
// only affects display text, never mechanics.
type DishType string

const (
	DishQuantumBurger        DishType = "Quantum Burger"
	DishSchrodingerSalad     DishType = "Schrödinger's Salad"
	DishEntangledPasta       DishType = "Entangled Pasta"
	DishProbabilityPie       DishType = "Probability Pie"
	DishWaveFunctionSoup     DishType = "Wave Function Soup"
	DishUncertaintySushi     DishType = "Uncertainty Sushi"
	DishQubitQuesadilla      DishType = "Qubit Quesadilla"
	DishSuperpositionStirFry DishType = "Superposition Stir Fry"
)

// AllDishes lists every dish on the menu.
var AllDishes = []DishType{
	DishQuantumBurger,
	DishSchrodingerSalad,
	DishEntangledPasta,
	DishProbabilityPie,
	DishWaveFunctionSoup,
	DishUncertaintySushi,
	DishQubitQuesadilla,
	DishSuperpositionStirFry,
}

// RandomDish picks a dish uniformly from the menu.
func RandomDish(rng *rand.Rand) DishType {
	return AllDishes[rng.Intn(len(AllDishes))]
}
