package dataset

// aliases maps normalized item names to candidate catalog names, tried in
// order, for items the fuzzy passes miss. Some entries ("Plain Rice",
// "Dosa") name foods the table spells differently; they resolve through
// containment or not at all, in which case the item is dropped.
var aliases = map[string][]string{
	"tea without sugar":          {"Tea without Sugar"},
	"tea with milk & sugar":      {"Tea with Milk & Sugar", "Tea with milk & sugar"},
	"tea with milk and sugar":    {"Tea with Milk & Sugar"},
	"coffee with milk & sugar":   {"Coffee with Milk & Sugar", "Coffee with milk & sugar"},
	"coffee with milk and sugar": {"Coffee with Milk & Sugar"},
	"masala chai":                {"Masala Chai"},
	"buttermilk":                 {"Buttermilk"},
	"green salad":                {"Green Salad"},
	"onion salad":                {"Onion Salad"},
	"banana":                     {"Banana"},
	"apple":                      {"Apple"},
	"papad":                      {"Papad"},
	"digestive biscuits":         {"Digestive Biscuits"},
	"sambar":                     {"Sambar"},
	"rasam":                      {"Rasam"},
	"coconut chutney":            {"Coconut Chutney"},
	"idli":                       {"Idli"},
	"dosa":                       {"Dosa"},
	"medu vada":                  {"Medu Vada"},
	"upma":                       {"Upma"},
	"pongal":                     {"Pongal"},
	"avial":                      {"Avial"},
	"curd rice":                  {"Curd Rice"},
	"lemon rice":                 {"Lemon Rice"},
	"plain rice":                 {"Plain Rice"},
	"raita":                      {"Raita"},
	"plain curd":                 {"Plain Curd"},
	"chapati":                    {"Chapati"},
	"aloo paratha":               {"Aloo Paratha"},
	"paneer paratha":             {"Paneer Paratha"},
	"poori":                      {"Poori"},
	"bread omelette":             {"Bread Omelette"},
	"bread":                      {"Bread"},
	"kadala curry":               {"Kadala Curry"},
	"chokha":                     {"Chokha"},
	"green chutney":              {"Green Chutney"},
	"aloo curry":                 {"Aloo Curry"},
	"vegetable stew":             {"Vegetable Stew"},
}

// Aliases returns the food name alias table.
func Aliases() map[string][]string {
	return aliases
}
