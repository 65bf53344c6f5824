// Package dataset holds the embedded food catalog: the food table,
// authored meal combination templates, and the name alias table.
package dataset

import "slaycal/models"

// Meal slot shorthands for the food table below.
var (
	mb   = []models.MealTime{models.MealBreakfast}
	ms   = []models.MealTime{models.MealSnack}
	mbl  = []models.MealTime{models.MealBreakfast, models.MealLunch}
	mbd  = []models.MealTime{models.MealBreakfast, models.MealDinner}
	mbs  = []models.MealTime{models.MealBreakfast, models.MealSnack}
	mld  = []models.MealTime{models.MealLunch, models.MealDinner}
	mlds = []models.MealTime{models.MealLunch, models.MealDinner, models.MealSnack}
	mbld = []models.MealTime{models.MealBreakfast, models.MealLunch, models.MealDinner}
)

func f(id int, name string, cal, protein, carbs, fat float64, cuisine string, diet models.DietaryType, meals []models.MealTime, category, serving, emoji string) models.FoodItem {
	return models.FoodItem{
		ID:                id,
		Name:              name,
		Calories:          cal,
		Protein:           protein,
		Carbs:             carbs,
		Fat:               fat,
		Cuisine:           cuisine,
		DietaryType:       diet,
		SuitableMealTimes: meals,
		Category:          category,
		ServingSize:       serving,
		Emoji:             emoji,
	}
}

var foods = []models.FoodItem{
	// North Indian breads
	f(1, "Chapati/Roti", 120, 3, 24, 2, "North Indian", models.DietVeg, mld, "bread", "1 medium (40g)", "🫓"),
	f(2, "Phulka", 90, 2, 18, 1.5, "North Indian", models.DietVeg, mld, "bread", "1 small (30g)", "🫓"),
	f(3, "Tandoori Roti", 140, 4, 28, 2, "North Indian", models.DietVeg, mld, "bread", "1 medium (50g)", "🫓"),
	f(4, "Butter Naan", 310, 7, 45, 11, "North Indian", models.DietVeg, mld, "bread", "1 medium (90g)", "🧈"),
	f(5, "Plain Naan", 260, 6, 42, 6, "North Indian", models.DietVeg, mld, "bread", "1 medium (80g)", "🥖"),
	f(6, "Garlic Naan", 330, 7, 46, 13, "North Indian", models.DietVeg, mld, "bread", "1 medium (90g)", "🧄"),
	f(7, "Paratha - Plain", 230, 5, 30, 10, "North Indian", models.DietVeg, mbl, "bread", "1 medium (60g)", "🫓"),
	f(8, "Aloo Paratha", 290, 6, 40, 12, "North Indian", models.DietVeg, mbl, "bread", "1 medium (100g)", "🥔"),
	f(9, "Paneer Paratha", 340, 12, 38, 15, "North Indian", models.DietVeg, mbl, "bread", "1 medium (110g)", "🧀"),
	f(10, "Methi Paratha", 250, 6, 32, 11, "North Indian", models.DietVeg, mbl, "bread", "1 medium (90g)", "🌿"),
	f(11, "Kulcha", 240, 6, 40, 6, "North Indian", models.DietVeg, mld, "bread", "1 medium (80g)", "🫓"),
	f(12, "Bhatura", 390, 7, 47, 19, "North Indian", models.DietVeg, mbl, "bread", "1 large (100g)", "🫓"),

	// North Indian rice dishes
	f(13, "Steamed Rice", 240, 4, 53, 0.5, "North Indian", models.DietVeg, mld, "rice", "1 cup (200g)", "🍚"),
	f(14, "Jeera Rice", 280, 5, 54, 5, "North Indian", models.DietVeg, mld, "rice", "1 cup (220g)", "🍚"),
	f(15, "Vegetable Pulao", 320, 6, 56, 8, "North Indian", models.DietVeg, mld, "rice", "1 cup (250g)", "🍚"),
	f(16, "Chicken Biryani", 450, 20, 58, 15, "North Indian", models.DietNonVeg, mld, "rice", "1 cup (300g)", "🍛"),
	f(17, "Vegetable Biryani", 360, 8, 60, 10, "North Indian", models.DietVeg, mld, "rice", "1 cup (280g)", "🍛"),
	f(18, "Mutton Biryani", 520, 22, 56, 22, "North Indian", models.DietNonVeg, mld, "rice", "1 cup (300g)", "🍛"),
	f(19, "Egg Biryani", 380, 14, 58, 11, "North Indian", models.DietEggetarian, mld, "rice", "1 cup (280g)", "🍛"),
	f(20, "Dal Khichdi", 210, 8, 38, 3, "North Indian", models.DietVeg, mld, "rice", "1 cup (250g)", "🍚"),

	// North Indian vegetarian curries
	f(21, "Dal Tadka", 180, 10, 28, 4, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥘"),
	f(22, "Dal Makhani", 280, 12, 30, 12, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🍛"),
	f(23, "Chana Masala", 240, 12, 35, 6, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🫘"),
	f(24, "Rajma Masala", 250, 13, 38, 5, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🫘"),
	f(25, "Paneer Butter Masala", 420, 16, 18, 32, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🧈"),
	f(26, "Palak Paneer", 280, 14, 12, 20, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥬"),
	f(27, "Shahi Paneer", 380, 15, 16, 28, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🧀"),
	f(28, "Kadai Paneer", 320, 14, 14, 24, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🍲"),
	f(29, "Matar Paneer", 300, 13, 18, 20, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🧀"),
	f(30, "Malai Kofta", 450, 10, 28, 32, "North Indian", models.DietVeg, mld, "curry", "2 koftas + gravy (200g)", "🍲"),
	f(31, "Aloo Gobi", 180, 4, 28, 6, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥔"),
	f(32, "Baingan Bharta", 160, 3, 18, 9, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🍆"),
	f(33, "Bhindi Masala", 140, 3, 16, 7, "North Indian", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥗"),
	f(34, "Mix Veg Curry", 160, 5, 22, 6, "North Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥗"),

	// North Indian non-vegetarian curries
	f(35, "Butter Chicken", 490, 28, 12, 36, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(36, "Chicken Tikka Masala", 420, 30, 14, 28, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(37, "Chicken Curry", 320, 26, 10, 20, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(38, "Kadai Chicken", 350, 28, 12, 22, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(39, "Chicken Korma", 450, 26, 14, 32, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(40, "Mutton Rogan Josh", 480, 24, 12, 36, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍖"),
	f(41, "Mutton Curry", 420, 22, 10, 32, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍖"),
	f(42, "Keema", 380, 20, 8, 28, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (150g)", "🍖"),
	f(43, "Fish Curry", 260, 24, 10, 14, "North Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🐟"),
	f(44, "Egg Curry", 280, 16, 10, 20, "North Indian", models.DietEggetarian, mld, "curry", "2 eggs + gravy (200g)", "🍳"),

	// North Indian tandoori and grilled
	f(45, "Chicken Tandoori", 260, 32, 4, 12, "North Indian", models.DietNonVeg, mld, "protein", "2 pieces (150g)", "🍖"),
	f(46, "Chicken Tikka", 220, 28, 3, 10, "North Indian", models.DietNonVeg, mld, "protein", "5 pieces (120g)", "🍖"),
	f(47, "Paneer Tikka", 310, 14, 8, 24, "North Indian", models.DietVeg, mld, "protein", "5 pieces (120g)", "🧀"),
	f(48, "Seekh Kebab", 280, 18, 6, 20, "North Indian", models.DietNonVeg, mld, "protein", "2 pieces (100g)", "🍖"),

	// South Indian breakfast
	f(49, "Idli", 80, 2, 17, 0.5, "South Indian", models.DietVeg, mb, "bread", "2 pieces (100g)", "🫓"),
	f(50, "Medu Vada", 220, 6, 24, 11, "South Indian", models.DietVeg, mbs, "snack", "2 pieces (80g)", "🍩"),
	f(51, "Plain Dosa", 168, 4, 28, 4, "South Indian", models.DietVeg, mbd, "bread", "1 medium (120g)", "🥞"),
	f(52, "Masala Dosa", 380, 8, 60, 12, "South Indian", models.DietVeg, mbd, "bread", "1 large (250g)", "🥞"),
	f(53, "Rava Dosa", 240, 5, 38, 7, "South Indian", models.DietVeg, mbd, "bread", "1 medium (150g)", "🥞"),
	f(54, "Onion Dosa", 200, 5, 32, 6, "South Indian", models.DietVeg, mbd, "bread", "1 medium (140g)", "🥞"),
	f(55, "Uttapam", 210, 6, 36, 5, "South Indian", models.DietVeg, mbd, "bread", "1 medium (150g)", "🥞"),
	f(56, "Pesarattu", 180, 8, 28, 4, "South Indian", models.DietVeg, mb, "bread", "1 medium (130g)", "🥞"),
	f(57, "Appam", 120, 2, 24, 2, "South Indian", models.DietVeg, mb, "bread", "2 pieces (100g)", "🥞"),
	f(58, "Puttu", 140, 3, 30, 1, "South Indian", models.DietVeg, mb, "other", "1 cup (150g)", "🍚"),
	f(59, "Upma", 220, 6, 38, 5, "South Indian", models.DietVeg, mb, "other", "1 bowl (200g)", "🍲"),
	f(60, "Pongal", 260, 8, 42, 7, "South Indian", models.DietVeg, mb, "rice", "1 bowl (200g)", "🍚"),

	// South Indian rice dishes
	f(61, "Sambar Rice", 240, 6, 46, 4, "South Indian", models.DietVeg, mld, "rice", "1 bowl (250g)", "🍚"),
	f(62, "Curd Rice", 180, 6, 34, 3, "South Indian", models.DietVeg, mld, "rice", "1 bowl (250g)", "🍚"),
	f(63, "Lemon Rice", 280, 5, 52, 6, "South Indian", models.DietVeg, mld, "rice", "1 bowl (200g)", "🍋"),
	f(64, "Coconut Rice", 320, 5, 50, 11, "South Indian", models.DietVeg, mld, "rice", "1 bowl (200g)", "🍚"),
	f(65, "Tamarind Rice", 290, 5, 54, 6, "South Indian", models.DietVeg, mld, "rice", "1 bowl (200g)", "🍚"),
	f(66, "Bisi Bele Bath", 310, 8, 55, 7, "South Indian", models.DietVeg, mld, "rice", "1 bowl (250g)", "🍚"),
	f(67, "Vangi Bath", 270, 6, 48, 6, "South Indian", models.DietVeg, mld, "rice", "1 bowl (200g)", "🍚"),

	// South Indian curries and sides
	f(68, "Sambar", 120, 6, 20, 2, "South Indian", models.DietVeg, mbld, "curry", "1 bowl (200g)", "🍲"),
	f(69, "Rasam", 50, 2, 10, 1, "South Indian", models.DietVeg, mld, "curry", "1 bowl (200g)", "🍲"),
	f(70, "Avial", 160, 4, 18, 8, "South Indian", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥗"),
	f(71, "Kootu", 140, 6, 22, 3, "South Indian", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥗"),
	f(72, "Thoran", 90, 3, 12, 4, "South Indian", models.DietVeg, mld, "curry", "1 bowl (100g)", "🥗"),
	f(73, "Poriyal", 80, 2, 10, 4, "South Indian", models.DietVeg, mld, "curry", "1 bowl (100g)", "🥗"),
	f(74, "Chettinad Chicken Curry", 380, 28, 12, 25, "South Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(75, "Fish Curry (Kerala style)", 280, 26, 8, 16, "South Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🐟"),
	f(76, "Prawn Curry", 240, 24, 10, 12, "South Indian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🦐"),
	f(77, "Coconut Chutney", 40, 1, 4, 3, "South Indian", models.DietVeg, mb, "side", "2 tbsp (30g)", "🥥"),

	// Bengali
	f(78, "Luchi", 240, 4, 30, 11, "Bengali", models.DietVeg, mbl, "bread", "2 pieces (60g)", "🫓"),
	f(79, "Alur Dom", 180, 3, 26, 7, "Bengali", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥔"),
	f(80, "Cholar Dal", 220, 10, 32, 6, "Bengali", models.DietVeg, mld, "curry", "1 bowl (200g)", "🫘"),
	f(81, "Shukto", 160, 4, 18, 8, "Bengali", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥗"),
	f(82, "Macher Jhol", 240, 24, 8, 13, "Bengali", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🐟"),
	f(83, "Doi Maach", 280, 26, 10, 16, "Bengali", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🐟"),
	f(84, "Kosha Mangsho", 460, 24, 12, 34, "Bengali", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍖"),
	f(85, "Chingri Malai Curry", 320, 22, 12, 21, "Bengali", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🦐"),
	f(86, "Begun Bhaja", 140, 2, 14, 9, "Bengali", models.DietVeg, mld, "curry", "100g", "🍆"),
	f(87, "Aloo Posto", 220, 5, 24, 12, "Bengali", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥔"),
	f(88, "Mishti Doi", 180, 6, 28, 5, "Bengali", models.DietVeg, ms, "dessert", "1 bowl (150g)", "🥛"),
	f(89, "Rasgulla", 186, 4, 40, 1, "Bengali", models.DietVeg, ms, "dessert", "2 pieces (100g)", "🍡"),

	// Gujarati
	f(90, "Thepla", 200, 5, 30, 7, "Gujarati", models.DietVeg, mbl, "bread", "2 pieces (80g)", "🫓"),
	f(91, "Dhokla", 160, 5, 28, 3, "Gujarati", models.DietVeg, mbs, "snack", "4 pieces (120g)", "🍰"),
	f(92, "Khandvi", 140, 6, 18, 5, "Gujarati", models.DietVeg, mbs, "snack", "6 rolls (100g)", "🍰"),
	f(93, "Undhiyu", 220, 6, 32, 8, "Gujarati", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥗"),
	f(94, "Gujarati Dal", 160, 8, 22, 4, "Gujarati", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥘"),
	f(95, "Kadhi", 180, 6, 16, 10, "Gujarati", models.DietVeg, mld, "curry", "1 bowl (200g)", "🍲"),
	f(96, "Dal Dhokli", 280, 10, 42, 8, "Gujarati", models.DietVeg, mld, "curry", "1 bowl (250g)", "🍲"),
	f(97, "Handvo", 190, 5, 26, 7, "Gujarati", models.DietVeg, mbs, "bread", "1 piece (100g)", "🫓"),
	f(98, "Fafda", 320, 8, 36, 16, "Gujarati", models.DietVeg, mbs, "snack", "4 pieces (80g)", "🥨"),
	f(99, "Sev Tameta", 160, 3, 20, 8, "Gujarati", models.DietVeg, mld, "curry", "1 bowl (150g)", "🍅"),
	f(100, "Ringan Bateta", 140, 3, 22, 5, "Gujarati", models.DietVeg, mld, "curry", "1 bowl (150g)", "🍆"),

	// Maharashtrian
	f(101, "Poha", 250, 5, 45, 6, "Maharashtrian", models.DietVeg, mb, "other", "1 plate (200g)", "🍚"),
	f(102, "Misal Pav", 380, 12, 56, 12, "Maharashtrian", models.DietVeg, mbl, "other", "1 plate (250g)", "🍲"),
	f(103, "Vada Pav", 290, 6, 42, 11, "Maharashtrian", models.DietVeg, mbs, "snack", "1 piece (150g)", "🍔"),
	f(104, "Pav Bhaji", 400, 8, 58, 15, "Maharashtrian", models.DietVeg, mld, "other", "1 plate (300g)", "🍞"),
	f(105, "Sabudana Khichdi", 360, 2, 66, 9, "Maharashtrian", models.DietVeg, mb, "other", "1 bowl (200g)", "🍚"),
	f(106, "Thalipeeth", 240, 6, 36, 8, "Maharashtrian", models.DietVeg, mbs, "bread", "2 pieces (100g)", "🫓"),
	f(107, "Zunka Bhakri", 280, 8, 44, 8, "Maharashtrian", models.DietVeg, mld, "other", "1 plate (200g)", "🍲"),
	f(108, "Kolhapuri Chicken", 380, 28, 12, 25, "Maharashtrian", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(109, "Bombil Fry", 220, 24, 8, 10, "Maharashtrian", models.DietNonVeg, mld, "protein", "150g", "🐟"),
	f(110, "Varan Bhaat", 300, 10, 56, 4, "Maharashtrian", models.DietVeg, mld, "rice", "1 plate (250g)", "🍚"),

	// Malayali
	f(111, "Appam with Stew", 280, 8, 42, 9, "Malayali", models.DietVeg, mbd, "other", "2 appam + stew (250g)", "🥞"),
	f(112, "Puttu with Kadala Curry", 320, 12, 54, 7, "Malayali", models.DietVeg, mb, "other", "1 serving (250g)", "🍚"),
	f(113, "Kerala Parotta", 300, 6, 42, 12, "Malayali", models.DietVeg, mld, "bread", "1 piece (100g)", "🫓"),
	f(114, "Sadya Meal", 600, 18, 110, 10, "Malayali", models.DietVeg, mld, "other", "full plate", "🍽️"),
	f(115, "Meen Pollichathu", 280, 28, 8, 15, "Malayali", models.DietNonVeg, mld, "protein", "200g", "🐟"),
	f(116, "Karimeen Fry", 260, 26, 6, 14, "Malayali", models.DietNonVeg, mld, "protein", "150g", "🐟"),
	f(117, "Beef Fry", 340, 28, 4, 24, "Malayali", models.DietNonVeg, mld, "protein", "150g", "🍖"),
	f(118, "Chicken Stew", 280, 24, 12, 16, "Malayali", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(218, "Vegetable Stew", 140, 3, 18, 6, "Malayali", models.DietVeg, mbd, "curry", "1 bowl (150g)", "🥗"),
	f(119, "Olan", 140, 4, 16, 7, "Malayali", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥗"),
	f(120, "Erissery", 180, 6, 24, 7, "Malayali", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥗"),

	// Andhra
	f(121, "Pesarattu with Upma", 280, 10, 46, 6, "Andhra", models.DietVeg, mb, "other", "1 serving (200g)", "🥞"),
	f(122, "Gongura Chicken", 360, 28, 10, 24, "Andhra", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(123, "Hyderabadi Biryani", 480, 22, 58, 18, "Andhra", models.DietNonVeg, mld, "rice", "1 plate (300g)", "🍛"),
	f(124, "Gutti Vankaya", 200, 4, 20, 12, "Andhra", models.DietVeg, mld, "curry", "1 bowl (150g)", "🍆"),
	f(125, "Natukodi Pulusu", 340, 26, 12, 22, "Andhra", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍗"),
	f(126, "Royyala Vepudu", 240, 26, 6, 12, "Andhra", models.DietNonVeg, mld, "protein", "150g", "🦐"),
	f(127, "Pulihora", 300, 5, 56, 7, "Andhra", models.DietVeg, mld, "rice", "1 bowl (200g)", "🍚"),
	f(128, "Pappu", 160, 9, 26, 3, "Andhra", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥘"),

	// Odia
	f(129, "Pakhala Bhata", 160, 4, 34, 1, "Odia", models.DietVeg, mld, "rice", "1 bowl (250g)", "🍚"),
	f(130, "Dalma", 180, 8, 30, 3, "Odia", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥘"),
	f(131, "Santula", 100, 3, 16, 3, "Odia", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥗"),
	f(132, "Machha Besara", 260, 26, 10, 14, "Odia", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🐟"),
	f(133, "Chingudi Jhola", 240, 24, 12, 11, "Odia", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🦐"),
	f(134, "Dahi Baigana", 160, 4, 18, 8, "Odia", models.DietVeg, mld, "curry", "1 bowl (150g)", "🍆"),

	// Rajasthani
	f(135, "Dal Baati Churma", 520, 12, 68, 22, "Rajasthani", models.DietVeg, mld, "other", "1 serving (300g)", "🍛"),
	f(136, "Gatte ki Sabzi", 260, 8, 32, 11, "Rajasthani", models.DietVeg, mld, "curry", "1 bowl (200g)", "🍲"),
	f(137, "Ker Sangri", 180, 4, 22, 9, "Rajasthani", models.DietVeg, mld, "curry", "1 bowl (150g)", "🥗"),
	f(138, "Laal Maas", 480, 24, 10, 38, "Rajasthani", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍖"),
	f(139, "Pyaaz Kachori", 320, 6, 40, 15, "Rajasthani", models.DietVeg, mbs, "snack", "2 pieces (100g)", "🥟"),
	f(140, "Mirchi Vada", 180, 4, 20, 9, "Rajasthani", models.DietVeg, mbs, "snack", "2 pieces (80g)", "🌶️"),

	// Bihari
	f(141, "Litti Chokha", 380, 10, 58, 12, "Bihari", models.DietVeg, mld, "other", "2 litti + chokha (250g)", "🫓"),
	f(142, "Sattu Paratha", 260, 8, 38, 9, "Bihari", models.DietVeg, mbl, "bread", "1 piece (100g)", "🫓"),
	f(143, "Champaran Mutton", 440, 26, 8, 34, "Bihari", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍖"),
	f(144, "Ghugni", 220, 10, 36, 4, "Bihari", models.DietVeg, mbs, "curry", "1 bowl (200g)", "🫘"),

	// North-Eastern
	f(145, "Momos (Veg)", 240, 8, 38, 6, "North-Eastern", models.DietVeg, mlds, "snack", "5 pieces (150g)", "🥟"),
	f(146, "Momos (Chicken)", 280, 16, 36, 8, "North-Eastern", models.DietNonVeg, mlds, "snack", "5 pieces (150g)", "🥟"),
	f(147, "Thukpa", 320, 14, 48, 8, "North-Eastern", models.DietNonVeg, mld, "other", "1 bowl (300g)", "🍜"),
	f(148, "Pork with Bamboo Shoot", 360, 24, 12, 24, "North-Eastern", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍖"),
	f(149, "Fish Tenga", 220, 24, 10, 10, "North-Eastern", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🐟"),
	f(150, "Jadoh", 340, 12, 52, 10, "North-Eastern", models.DietNonVeg, mld, "rice", "1 bowl (200g)", "🍚"),

	// Kashmiri
	f(151, "Rogan Josh", 480, 24, 12, 36, "Kashmiri", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍖"),
	f(152, "Yakhni", 320, 26, 10, 20, "Kashmiri", models.DietNonVeg, mld, "curry", "1 bowl (200g)", "🍲"),
	f(153, "Dum Aloo Kashmiri", 280, 4, 36, 14, "Kashmiri", models.DietVeg, mld, "curry", "1 bowl (200g)", "🥔"),
	f(154, "Gushtaba", 380, 20, 12, 28, "Kashmiri", models.DietNonVeg, mld, "curry", "3 pieces (150g)", "🍖"),
	f(155, "Nadru Yakhni", 180, 4, 24, 8, "Kashmiri", models.DietVeg, mld, "curry", "1 bowl (150g)", "🌿"),

	// Snacks and street food
	f(156, "Samosa", 308, 6, 38, 15, "Snacks", models.DietVeg, ms, "snack", "2 pieces (100g)", "🥟"),
	f(157, "Kachori", 280, 6, 34, 13, "Snacks", models.DietVeg, ms, "snack", "2 pieces (80g)", "🥟"),
	f(158, "Pakora", 240, 6, 28, 12, "Snacks", models.DietVeg, ms, "snack", "6 pieces (100g)", "🍤"),
	f(159, "Bread Pakora", 320, 8, 42, 13, "Snacks", models.DietVeg, ms, "snack", "2 pieces (120g)", "🍞"),
	f(160, "Paneer Pakora", 340, 14, 24, 21, "Snacks", models.DietVeg, ms, "snack", "6 pieces (120g)", "🧀"),
	f(161, "Aloo Tikki", 220, 4, 32, 9, "Snacks", models.DietVeg, ms, "snack", "2 pieces (100g)", "🥔"),
	f(162, "Pani Puri", 240, 6, 46, 5, "Snacks", models.DietVeg, ms, "snack", "10 pieces (200g)", "🥟"),
	f(163, "Sev Puri", 280, 6, 38, 12, "Snacks", models.DietVeg, ms, "snack", "1 plate (150g)", "🥗"),
	f(164, "Bhel Puri", 220, 5, 36, 7, "Snacks", models.DietVeg, ms, "snack", "1 plate (150g)", "🥗"),
	f(165, "Dahi Puri", 300, 8, 44, 10, "Snacks", models.DietVeg, ms, "snack", "10 pieces (200g)", "🥗"),
	f(166, "Papdi Chaat", 260, 7, 38, 9, "Snacks", models.DietVeg, ms, "snack", "1 plate (150g)", "🥗"),
	f(167, "Aloo Chaat", 200, 4, 32, 6, "Snacks", models.DietVeg, ms, "snack", "1 plate (150g)", "🥔"),
	f(168, "Raj Kachori", 360, 8, 48, 15, "Snacks", models.DietVeg, ms, "snack", "1 large (150g)", "🥟"),
	f(169, "Pav", 140, 4, 26, 2, "Snacks", models.DietVeg, ms, "bread", "1 piece (50g)", "🍞"),
	f(170, "Spring Roll", 260, 6, 32, 12, "Snacks", models.DietVeg, ms, "snack", "2 pieces (100g)", "🥟"),
	f(171, "Cutlet", 220, 8, 26, 10, "Snacks", models.DietVeg, ms, "snack", "2 pieces (100g)", "🍖"),
	f(172, "Bonda", 180, 4, 24, 8, "Snacks", models.DietVeg, ms, "snack", "2 pieces (80g)", "🍩"),

	// Breakfast and light items
	f(173, "Poori", 240, 4, 28, 12, "North Indian", models.DietVeg, mb, "bread", "2 pieces (60g)", "🫓"),
	f(174, "Chole Bhature", 580, 14, 72, 26, "North Indian", models.DietVeg, mbl, "other", "1 plate (300g)", "🍛"),
	f(175, "Aloo Puri", 460, 8, 64, 19, "North Indian", models.DietVeg, mb, "other", "1 plate (250g)", "🍛"),
	f(176, "Bread Omelette", 320, 18, 28, 15, "North Indian", models.DietEggetarian, mb, "protein", "2 slices + 2 eggs (150g)", "🍳"),
	f(177, "Boiled Egg", 140, 13, 1, 9, "North Indian", models.DietEggetarian, mbs, "protein", "2 eggs (100g)", "🥚"),
	f(178, "Omelette", 190, 14, 2, 14, "North Indian", models.DietEggetarian, mb, "protein", "2 eggs (120g)", "🍳"),
	f(179, "Egg Bhurji", 240, 16, 6, 17, "North Indian", models.DietEggetarian, mbl, "curry", "2 eggs (150g)", "🍳"),
	f(180, "Bread Butter Jam", 260, 5, 38, 9, "North Indian", models.DietVeg, mb, "bread", "2 slices (80g)", "🍞"),
	f(181, "Sandwich (Veg)", 280, 8, 42, 9, "North Indian", models.DietVeg, mbs, "other", "2 slices (150g)", "🥪"),
	f(182, "Grilled Sandwich", 320, 10, 44, 12, "North Indian", models.DietVeg, mbs, "other", "1 sandwich (150g)", "🥪"),

	// Accompaniments and sides
	f(183, "Raita", 90, 5, 10, 4, "North Indian", models.DietVeg, mld, "side", "1 bowl (150g)", "🥛"),
	f(184, "Plain Curd", 98, 6, 7, 5, "North Indian", models.DietVeg, mlds, "side", "1 bowl (150g)", "🥛"),
	f(185, "Pickle", 26, 0.5, 3, 1.5, "North Indian", models.DietVeg, mld, "side", "1 tbsp (20g)", "🥒"),
	f(186, "Papad", 70, 2, 10, 2, "North Indian", models.DietVeg, mld, "side", "2 pieces (20g)", "🍪"),
	f(187, "Green Salad", 25, 1, 5, 0.3, "North Indian", models.DietVeg, mld, "side", "1 bowl (100g)", "🥗"),
	f(188, "Onion Salad", 20, 0.5, 5, 0.1, "North Indian", models.DietVeg, mld, "side", "1 bowl (50g)", "🧅"),
	f(189, "Mint Chutney", 15, 0.5, 3, 0.2, "North Indian", models.DietVeg, mlds, "side", "2 tbsp (30g)", "🌿"),
	f(190, "Tamarind Chutney", 50, 0.3, 13, 0.1, "North Indian", models.DietVeg, mlds, "side", "2 tbsp (30g)", "🍯"),

	// Desserts and sweets
	f(191, "Gulab Jamun", 260, 4, 50, 6, "North Indian", models.DietVeg, ms, "dessert", "2 pieces (100g)", "🍡"),
	f(192, "Jalebi", 280, 2, 60, 3, "North Indian", models.DietVeg, ms, "dessert", "4 pieces (100g)", "🍩"),
	f(193, "Ladoo", 320, 6, 48, 12, "North Indian", models.DietVeg, ms, "dessert", "2 pieces (80g)", "🍡"),
	f(194, "Barfi", 280, 6, 44, 9, "North Indian", models.DietVeg, ms, "dessert", "2 pieces (80g)", "🍬"),
	f(195, "Halwa", 320, 4, 52, 11, "North Indian", models.DietVeg, ms, "dessert", "1 bowl (100g)", "🍯"),
	f(196, "Kheer", 220, 6, 38, 5, "North Indian", models.DietVeg, ms, "dessert", "1 bowl (150g)", "🍚"),
	f(197, "Rasmalai", 240, 6, 36, 8, "North Indian", models.DietVeg, ms, "dessert", "2 pieces (120g)", "🍡"),
	f(198, "Kulfi", 200, 5, 28, 8, "North Indian", models.DietVeg, ms, "dessert", "1 piece (100g)", "🍦"),
	f(199, "Ice Cream", 140, 3, 18, 7, "North Indian", models.DietVeg, ms, "dessert", "1 scoop (75g)", "🍨"),

	// Beverages
	f(200, "Tea with Milk & Sugar", 60, 2, 10, 2, "North Indian", models.DietVeg, mbs, "beverage", "1 cup (150ml)", "☕"),
	f(201, "Tea without Sugar", 20, 1, 2, 1, "North Indian", models.DietVeg, mbs, "beverage", "1 cup (150ml)", "☕"),
	f(202, "Coffee with Milk & Sugar", 70, 2, 12, 2, "North Indian", models.DietVeg, mbs, "beverage", "1 cup (150ml)", "☕"),
	f(203, "Masala Chai", 65, 2, 11, 2, "North Indian", models.DietVeg, mbs, "beverage", "1 cup (150ml)", "☕"),
	f(204, "Lassi - Sweet", 180, 6, 28, 5, "North Indian", models.DietVeg, ms, "beverage", "1 glass (200ml)", "🥛"),
	f(205, "Lassi - Salted", 120, 6, 12, 5, "North Indian", models.DietVeg, ms, "beverage", "1 glass (200ml)", "🥛"),
	f(206, "Buttermilk", 60, 3, 8, 1.5, "North Indian", models.DietVeg, mlds, "beverage", "1 glass (200ml)", "🥛"),
	f(207, "Sugarcane Juice", 180, 0, 45, 0, "North Indian", models.DietVeg, ms, "beverage", "1 glass (250ml)", "🥤"),
	f(208, "Coconut Water", 46, 2, 9, 0.5, "North Indian", models.DietVeg, ms, "beverage", "1 glass (250ml)", "🥥"),
	f(209, "Nimbu Pani", 60, 0, 16, 0, "North Indian", models.DietVeg, ms, "beverage", "1 glass (250ml)", "🍋"),

	// Common items
	f(210, "Bread", 70, 2, 13, 1, "North Indian", models.DietVeg, mbs, "bread", "1 slice (25g)", "🍞"),
	f(211, "Banana", 105, 1, 27, 0.3, "North Indian", models.DietVeg, mbs, "other", "1 medium (118g)", "🍌"),
	f(212, "Apple", 95, 0.5, 25, 0.3, "North Indian", models.DietVeg, ms, "other", "1 medium (182g)", "🍎"),
	f(213, "Digestive Biscuits", 20, 0.5, 3.5, 0.8, "North Indian", models.DietVeg, ms, "snack", "1 biscuit (8g)", "🍪"),
	f(214, "Kadala Curry", 220, 8, 32, 6, "Malayali", models.DietVeg, mbld, "curry", "1 bowl (200g)", "🫘"),
	f(215, "Chokha", 80, 2, 12, 3, "Bihari", models.DietVeg, mld, "side", "1 bowl (100g)", "🥗"),
	f(216, "Green Chutney", 8, 0.3, 1.5, 0.2, "Gujarati", models.DietVeg, mbs, "side", "1 tbsp (15g)", "🌿"),
	f(217, "Aloo Curry", 180, 3, 28, 6, "North Indian", models.DietVeg, mbld, "curry", "1 bowl (150g)", "🥔"),
}

// Foods returns the embedded food table in catalog order.
func Foods() []models.FoodItem {
	return foods
}
