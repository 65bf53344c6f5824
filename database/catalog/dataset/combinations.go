package dataset

import "slaycal/models"

func ref(name string, portion, calories float64) models.ComboItemRef {
	return models.ComboItemRef{Food: name, Portion: portion, Calories: calories}
}

func combo(cuisine string, mt models.MealTime, name string, total, protein, carbs, fat float64, items ...models.ComboItemRef) models.ComboTemplate {
	return models.ComboTemplate{
		Name:          name,
		Cuisine:       cuisine,
		MealTime:      mt,
		Items:         items,
		TotalCalories: total,
		Protein:       protein,
		Carbs:         carbs,
		Fat:           fat,
	}
}

var combinations = []models.ComboTemplate{
	// North Indian
	combo("North Indian", models.MealBreakfast, "Classic Paratha Breakfast", 320, 8, 46, 13,
		ref("Aloo Paratha", 1, 290), ref("Raita", 0.33, 30)),
	combo("North Indian", models.MealBreakfast, "Light Roti Meal", 293, 9, 50, 5,
		ref("Chapati", 2, 240), ref("Plain Curd", 0.33, 33), ref("Tea without sugar", 0, 20)),
	combo("North Indian", models.MealBreakfast, "Bread & Protein", 320, 18, 28, 15,
		ref("Bread Omelette", 0, 320)),
	combo("North Indian", models.MealBreakfast, "Quick Poori Meal", 300, 6, 42, 13,
		ref("Poori", 2, 240), ref("Aloo Curry", 0.33, 60)),
	combo("North Indian", models.MealBreakfast, "Paneer Paratha Special", 340, 12, 38, 15,
		ref("Paneer Paratha", 1, 340)),
	combo("North Indian", models.MealLunch, "Dal-Rice Thali", 415, 15, 73, 6,
		ref("Plain Rice", 0.75, 180), ref("Dal Tadka", 0, 180), ref("Green Salad", 0, 25), ref("Raita", 0.33, 30)),
	combo("North Indian", models.MealLunch, "Rajma Rice Bowl", 412, 18, 75, 5,
		ref("Plain Rice", 0.67, 162), ref("Rajma Masala", 0, 250)),
	combo("North Indian", models.MealLunch, "Paneer Roti Meal", 400, 16, 55, 13,
		ref("Chapati", 2, 240), ref("Palak Paneer", 0.5, 140), ref("Onion Salad", 0, 20)),
	combo("North Indian", models.MealLunch, "Chana Masala Plate", 450, 18, 67, 11,
		ref("Chapati", 2, 240), ref("Chana Masala", 0.5, 120), ref("Raita", 0, 90)),
	combo("North Indian", models.MealLunch, "Mixed Veg Thali", 437, 13, 78, 9,
		ref("Jeera Rice", 0.75, 187), ref("Mix Veg Curry", 0, 160), ref("Dal Tadka", 0.5, 90)),
	combo("North Indian", models.MealDinner, "Light Dal-Roti", 355, 11, 62, 6,
		ref("Chapati", 2, 240), ref("Dal Tadka", 0.5, 90), ref("Green Salad", 0, 25)),
	combo("North Indian", models.MealDinner, "Paneer Light Meal", 340, 12, 37, 14,
		ref("Chapati", 1, 120), ref("Matar Paneer", 0.5, 150), ref("Raita", 0.5, 45), ref("Green Salad", 0, 25)),
	combo("North Indian", models.MealDinner, "Simple Khichdi", 348, 13, 57, 5,
		ref("Dal Khichdi", 1.5, 315), ref("Plain Curd", 0.33, 33)),
	combo("North Indian", models.MealDinner, "Aloo Gobi Dinner", 390, 9, 70, 8,
		ref("Chapati", 2, 240), ref("Aloo Gobi", 0.5, 90), ref("Buttermilk", 0, 60)),
	combo("North Indian", models.MealDinner, "Light Rice Meal", 327, 12, 50, 7,
		ref("Plain Rice", 0.67, 162), ref("Dal Makhani", 0.5, 140), ref("Green Salad", 0, 25)),
	combo("North Indian", models.MealSnack, "Tea Time Classic", 60, 2, 10, 2,
		ref("Tea with milk & sugar", 0, 60)),
	combo("North Indian", models.MealSnack, "Light Snack", 110, 2, 16, 4.5,
		ref("Aloo Tikki", 1, 110)),
	combo("North Indian", models.MealSnack, "Samosa Mini", 154, 3, 19, 7.5,
		ref("Samosa", 1, 154)),
	combo("North Indian", models.MealSnack, "Pakora Snack", 120, 3, 14, 6,
		ref("Pakora", 0.33, 120)),
	combo("North Indian", models.MealSnack, "Fruit & Tea", 140, 2, 34, 1,
		ref("Tea without sugar", 0, 20), ref("Banana", 0, 60), ref("Apple", 0, 60)),

	// South Indian
	combo("South Indian", models.MealBreakfast, "Classic Idli Breakfast", 280, 8, 51, 4,
		ref("Idli", 3, 120), ref("Sambar", 0, 120), ref("Coconut Chutney", 2, 40)),
	combo("South Indian", models.MealBreakfast, "Dosa Delight", 312, 8, 50, 7,
		ref("Dosa (Plain)", 1.5, 252), ref("Sambar", 0.5, 60)),
	combo("South Indian", models.MealBreakfast, "Vada Special", 300, 8, 36, 12,
		ref("Medu Vada", 2, 220), ref("Sambar", 0.5, 60), ref("Coconut Chutney", 1, 20)),
	combo("South Indian", models.MealBreakfast, "Upma Breakfast", 320, 8, 58, 6,
		ref("Upma", 0, 220), ref("Coconut Chutney", 2, 40), ref("Banana", 0, 60)),
	combo("South Indian", models.MealBreakfast, "Pongal Morning", 300, 10, 50, 8,
		ref("Pongal", 0, 260), ref("Coconut Chutney", 2, 40)),
	combo("South Indian", models.MealLunch, "Sambar Rice Meal", 420, 10, 83, 4,
		ref("Plain Rice", 1, 240), ref("Sambar", 0, 120), ref("Rasam", 0.5, 25), ref("Papad", 1, 35)),
	combo("South Indian", models.MealLunch, "Lemon Rice Combo", 410, 9, 74, 11,
		ref("Lemon Rice", 0, 280), ref("Rasam", 0, 50), ref("Poriyal", 0, 80)),
	combo("South Indian", models.MealLunch, "Curd Rice Special", 435, 11, 73, 10,
		ref("Curd Rice", 1.5, 270), ref("Avial", 0.5, 80), ref("Rasam", 0, 50), ref("Papad", 1, 35)),
	combo("South Indian", models.MealLunch, "Bisi Bele Bath Meal", 435, 14, 69, 10,
		ref("Bisi Bele Bath", 0, 310), ref("Raita", 0, 90), ref("Papad", 1, 35)),
	combo("South Indian", models.MealLunch, "Coconut Rice Thali", 435, 9, 63, 15,
		ref("Coconut Rice", 0, 320), ref("Kootu", 0.5, 70), ref("Thoran", 0.5, 45)),
	combo("South Indian", models.MealDinner, "Light Dosa Dinner", 372, 10, 62, 8,
		ref("Dosa (Plain)", 1.5, 252), ref("Sambar", 0, 120)),
	combo("South Indian", models.MealDinner, "Idli Night Meal", 380, 10, 67, 5,
		ref("Idli", 4, 160), ref("Sambar", 0, 120), ref("Coconut Chutney", 2, 40), ref("Buttermilk", 0, 60)),
	combo("South Indian", models.MealDinner, "Rava Dosa Light", 340, 7, 56, 9,
		ref("Rava Dosa", 0, 240), ref("Sambar", 0.5, 60), ref("Coconut Chutney", 2, 40)),
	combo("South Indian", models.MealDinner, "Appam Dinner", 340, 7, 48, 13,
		ref("Appam", 3, 180), ref("Avial", 0, 160)),
	combo("South Indian", models.MealDinner, "Uttapam Evening", 350, 8, 60, 7,
		ref("Uttapam", 0, 210), ref("Sambar", 0, 120), ref("Coconut Chutney", 1, 20)),
	combo("South Indian", models.MealSnack, "Coffee Break", 130, 3, 26, 2,
		ref("Coffee with Milk & Sugar", 0, 70), ref("Banana", 0, 60)),
	combo("South Indian", models.MealSnack, "Vada Mini", 110, 3, 12, 5.5,
		ref("Medu Vada", 1, 110)),
	combo("South Indian", models.MealSnack, "Idli Snack", 100, 3, 19, 1,
		ref("Idli", 2, 80), ref("Coconut Chutney", 1, 20)),
	combo("South Indian", models.MealSnack, "Light Tea", 105, 3, 19, 2,
		ref("Masala Chai", 0, 65), ref("Digestive biscuits", 0, 40)),
	combo("South Indian", models.MealSnack, "Buttermilk Refresh", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),

	// Bengali
	combo("Bengali", models.MealBreakfast, "Classic Luchi-Alur Dom", 330, 6, 48, 13,
		ref("Luchi", 2, 240), ref("Alur Dom", 0.5, 90)),
	combo("Bengali", models.MealBreakfast, "Cholar Dal Morning", 290, 9, 41, 9,
		ref("Luchi", 1.5, 180), ref("Cholar Dal", 0.5, 110)),
	combo("Bengali", models.MealBreakfast, "Light Posto Breakfast", 313, 7, 40, 12,
		ref("Chapati", 2, 240), ref("Aloo Posto", 0.33, 73)),
	combo("Bengali", models.MealBreakfast, "Egg Breakfast", 300, 11, 30, 13,
		ref("Luchi", 1, 120), ref("Egg Bhurji", 0.5, 120), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Bengali", models.MealBreakfast, "Paratha Morning", 290, 8, 39, 11,
		ref("Paratha - Plain", 1, 230), ref("Mishti Doi", 0.33, 60)),
	combo("Bengali", models.MealLunch, "Traditional Fish Meal", 430, 18, 60, 12,
		ref("Steamed Rice", 1, 240), ref("Macher Jhol", 0.5, 120), ref("Begun Bhaja", 0.5, 70)),
	combo("Bengali", models.MealLunch, "Shukto Thali", 435, 8, 71, 11,
		ref("Steamed Rice", 1, 240), ref("Shukto", 0, 160), ref("Papad", 0.5, 35)),
	combo("Bengali", models.MealLunch, "Dal-Rice Bengali Style", 460, 14, 79, 8,
		ref("Steamed Rice", 1, 240), ref("Cholar Dal", 0, 220)),
	combo("Bengali", models.MealLunch, "Doi Maach Special", 393, 18, 45, 14,
		ref("Steamed Rice", 0.75, 180), ref("Doi Maach", 0.5, 140), ref("Aloo Posto", 0.33, 73)),
	combo("Bengali", models.MealLunch, "Mixed Bengali Meal", 430, 6, 64, 16,
		ref("Steamed Rice", 0.75, 180), ref("Alur Dom", 0, 180), ref("Begun Bhaja", 0.5, 70)),
	combo("Bengali", models.MealDinner, "Light Fish Dinner", 342, 16, 51, 8,
		ref("Steamed Rice", 0.67, 162), ref("Macher Jhol", 0.5, 120), ref("Green Salad", 0, 25), ref("Papad", 0.5, 35)),
	combo("Bengali", models.MealDinner, "Dal-Rice Light", 362, 13, 55, 9,
		ref("Steamed Rice", 0.67, 162), ref("Cholar Dal", 0.5, 110), ref("Raita", 0, 90)),
	combo("Bengali", models.MealDinner, "Simple Shukto Meal", 380, 7, 69, 7,
		ref("Steamed Rice", 1, 240), ref("Shukto", 0.5, 80), ref("Buttermilk", 0, 60)),
	combo("Bengali", models.MealDinner, "Aloo Posto Dinner", 350, 8, 48, 13,
		ref("Chapati", 2, 240), ref("Aloo Posto", 0.5, 110)),
	combo("Bengali", models.MealDinner, "Light Bengali Evening", 342, 8, 56, 9,
		ref("Steamed Rice", 0.67, 162), ref("Alur Dom", 0.5, 90), ref("Raita", 0, 90)),
	combo("Bengali", models.MealSnack, "Tea & Mishti", 153, 4, 30, 3,
		ref("Tea with Milk & Sugar", 0, 60), ref("Rasgulla", 0.5, 93)),
	combo("Bengali", models.MealSnack, "Light Tea Break", 100, 3, 18, 3,
		ref("Tea with Milk & Sugar", 0, 60), ref("Digestive biscuits", 0, 40)),
	combo("Bengali", models.MealSnack, "Mishti Doi Snack", 90, 3, 14, 2.5,
		ref("Mishti Doi", 0.5, 90)),
	combo("Bengali", models.MealSnack, "Fruit & Tea", 125, 2, 28, 1,
		ref("Tea without Sugar", 0, 20), ref("Banana", 0, 105)),
	combo("Bengali", models.MealSnack, "Simple Chai", 125, 2, 27, 2,
		ref("Masala Chai", 0, 65), ref("Apple", 0, 60)),

	// Gujarati
	combo("Gujarati", models.MealBreakfast, "Thepla Classic", 303, 8, 42, 10,
		ref("Thepla", 2.5, 250), ref("Plain Curd", 0.33, 33), ref("Tea without Sugar", 0, 20)),
	combo("Gujarati", models.MealBreakfast, "Dhokla Morning", 275, 7, 46, 5,
		ref("Dhokla", 5, 200), ref("Green Chutney", 2, 15), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Gujarati", models.MealBreakfast, "Handvo Breakfast", 293, 7.5, 39, 10.5,
		ref("Handvo", 1.5, 285), ref("Green Chutney", 1, 8)),
	combo("Gujarati", models.MealBreakfast, "Khandvi Special", 291, 11, 36, 10,
		ref("Khandvi", 10, 231), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Gujarati", models.MealBreakfast, "Quick Thepla", 300, 7.5, 45, 10.5,
		ref("Thepla", 3, 300)),
	combo("Gujarati", models.MealLunch, "Undhiyu Thali", 440, 13, 66, 13,
		ref("Chapati", 2, 240), ref("Undhiyu", 0.5, 110), ref("Kadhi", 0.5, 90)),
	combo("Gujarati", models.MealLunch, "Dal Dhokli Meal", 405, 15, 62, 11,
		ref("Dal Dhokli", 0, 280), ref("Raita", 0, 90), ref("Papad", 0.5, 35)),
	combo("Gujarati", models.MealLunch, "Kadhi-Rice", 420, 10, 69, 12,
		ref("Steamed Rice", 1, 240), ref("Kadhi", 0, 180)),
	combo("Gujarati", models.MealLunch, "Mixed Gujarati Thali", 410, 10, 66, 11,
		ref("Chapati", 2, 240), ref("Ringan Bateta", 0, 140), ref("Raita", 0.33, 30)),
	combo("Gujarati", models.MealLunch, "Simple Dal-Roti", 450, 14, 78, 8,
		ref("Chapati", 3, 360), ref("Gujarati Dal", 0.5, 90)),
	combo("Gujarati", models.MealDinner, "Light Kadhi Meal", 342, 9, 50, 11,
		ref("Steamed Rice", 0.67, 162), ref("Kadhi", 0, 180)),
	combo("Gujarati", models.MealDinner, "Dhokla Dinner", 345, 12, 52, 9,
		ref("Dhokla", 6, 240), ref("Green Chutney", 2, 15), ref("Raita", 0, 90)),
	combo("Gujarati", models.MealDinner, "Simple Thepla Meal", 324, 11, 45, 10,
		ref("Thepla", 2, 200), ref("Plain Curd", 0, 98), ref("Pickle", 0, 26)),
	combo("Gujarati", models.MealDinner, "Sev Tameta Dinner", 400, 9, 56, 14,
		ref("Chapati", 2, 240), ref("Sev Tameta", 0, 160)),
	combo("Gujarati", models.MealDinner, "Light Vegetable Meal", 370, 9, 60, 9,
		ref("Chapati", 2, 240), ref("Ringan Bateta", 0.5, 70), ref("Buttermilk", 0, 60)),
	combo("Gujarati", models.MealSnack, "Tea & Fafda", 140, 4, 17, 6,
		ref("Tea with Milk & Sugar", 0, 60), ref("Fafda", 0.25, 80)),
	combo("Gujarati", models.MealSnack, "Khandvi Snack", 91, 4, 12, 3,
		ref("Khandvi", 4, 91)),
	combo("Gujarati", models.MealSnack, "Dhokla Light", 88, 2.5, 14, 1.5,
		ref("Dhokla", 2, 80), ref("Green Chutney", 1, 8)),
	combo("Gujarati", models.MealSnack, "Chai Time", 105, 3, 19, 2,
		ref("Masala Chai", 0, 65), ref("Digestive biscuits", 0, 40)),
	combo("Gujarati", models.MealSnack, "Buttermilk Break", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),

	// Maharashtrian
	combo("Maharashtrian", models.MealBreakfast, "Poha Classic", 310, 7, 55, 8,
		ref("Poha", 0, 250), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Maharashtrian", models.MealBreakfast, "Thalipeeth Morning", 293, 9, 46, 9,
		ref("Thalipeeth", 2, 240), ref("Plain Curd", 0.33, 33), ref("Tea without Sugar", 0, 20)),
	combo("Maharashtrian", models.MealBreakfast, "Sabudana Breakfast", 278, 7, 49, 6,
		ref("Sabudana Khichdi", 0.5, 180), ref("Plain Curd", 0, 98)),
	combo("Maharashtrian", models.MealBreakfast, "Bread Breakfast", 320, 18, 28, 15,
		ref("Bread Omelette", 0, 320)),
	combo("Maharashtrian", models.MealBreakfast, "Light Upma", 300, 7, 56, 5,
		ref("Upma", 0, 220), ref("Banana", 0, 60), ref("Tea without Sugar", 0, 20)),
	combo("Maharashtrian", models.MealLunch, "Misal Pav", 400, 12, 56, 12,
		ref("Misal Pav", 0, 380), ref("Onion Salad", 0, 20)),
	combo("Maharashtrian", models.MealLunch, "Pav Bhaji Meal", 400, 8, 58, 15,
		ref("Pav Bhaji", 0, 400)),
	combo("Maharashtrian", models.MealLunch, "Varan Bhaat Thali", 425, 15, 72, 7,
		ref("Varan Bhaat", 0, 300), ref("Raita", 0, 90), ref("Papad", 0.5, 35)),
	combo("Maharashtrian", models.MealLunch, "Dal-Rice Simple", 420, 14, 77, 6,
		ref("Steamed Rice", 1, 240), ref("Dal Tadka", 0, 180)),
	combo("Maharashtrian", models.MealLunch, "Zunka Bhakri", 390, 13, 60, 10,
		ref("Zunka Bhakri", 0, 280), ref("Raita", 0, 90), ref("Onion Salad", 0, 20)),
	combo("Maharashtrian", models.MealDinner, "Light Bhakri Meal", 390, 12, 66, 7,
		ref("Chapati", 2, 240), ref("Dal Tadka", 0.5, 90), ref("Buttermilk", 0, 60)),
	combo("Maharashtrian", models.MealDinner, "Thalipeeth Dinner", 338, 12, 46, 11,
		ref("Thalipeeth", 2, 240), ref("Plain Curd", 0, 98)),
	combo("Maharashtrian", models.MealDinner, "Simple Rice Meal", 347, 11, 66, 3,
		ref("Steamed Rice", 0.67, 162), ref("Varan Bhaat", 0.67, 160), ref("Green Salad", 0, 25)),
	combo("Maharashtrian", models.MealDinner, "Light Pav Bhaji", 357, 10, 52, 12,
		ref("Pav Bhaji", 0.67, 267), ref("Raita", 0, 90)),
	combo("Maharashtrian", models.MealDinner, "Poha Dinner", 375, 7.5, 67.5, 9,
		ref("Poha", 1.5, 375)),
	combo("Maharashtrian", models.MealSnack, "Vada Pav", 145, 3, 21, 5.5,
		ref("Vada Pav", 0.5, 145)),
	combo("Maharashtrian", models.MealSnack, "Tea Break", 100, 3, 18, 3,
		ref("Tea with Milk & Sugar", 0, 60), ref("Digestive biscuits", 0, 40)),
	combo("Maharashtrian", models.MealSnack, "Samosa Mini", 97, 2, 11, 4,
		ref("Samosa", 0.25, 77), ref("Tea without Sugar", 0, 20)),
	combo("Maharashtrian", models.MealSnack, "Light Snack", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),
	combo("Maharashtrian", models.MealSnack, "Fruit Break", 105, 1, 27, 0.3,
		ref("Banana", 0, 105)),

	// Malayali
	combo("Malayali", models.MealBreakfast, "Puttu-Kadala", 310, 9, 60, 4,
		ref("Puttu", 0, 140), ref("Kadala Curry", 0.5, 110), ref("Banana", 0, 60)),
	combo("Malayali", models.MealBreakfast, "Appam-Stew", 320, 6, 54, 8,
		ref("Appam", 2, 120), ref("Chicken Stew", 0.5, 140), ref("Banana", 0, 60)),
	combo("Malayali", models.MealBreakfast, "Dosa Kerala Style", 292, 6, 48, 7,
		ref("Plain Dosa", 1.5, 252), ref("Coconut Chutney", 2, 40)),
	combo("Malayali", models.MealBreakfast, "Idli Breakfast", 280, 8, 51, 4,
		ref("Idli", 3, 120), ref("Sambar", 0, 120), ref("Coconut Chutney", 2, 40)),
	combo("Malayali", models.MealBreakfast, "Simple Puttu", 340, 6, 72, 2,
		ref("Puttu", 2, 280), ref("Banana", 0, 60)),
	combo("Malayali", models.MealLunch, "Kerala Sadya Mini", 435, 8, 71, 12,
		ref("Steamed Rice", 0.75, 180), ref("Sambar", 0.5, 60), ref("Avial", 0, 160), ref("Papad", 0.5, 35)),
	combo("Malayali", models.MealLunch, "Fish Curry Meal", 405, 17, 57, 10,
		ref("Steamed Rice", 1, 240), ref("Fish Curry (Kerala style)", 0.5, 140), ref("Green Salad", 0, 25)),
	combo("Malayali", models.MealLunch, "Olan Rice", 415, 8, 69, 10,
		ref("Steamed Rice", 1, 240), ref("Olan", 0, 140), ref("Papad", 0.5, 35)),
	combo("Malayali", models.MealLunch, "Thoran Meal", 420, 10, 73, 10,
		ref("Steamed Rice", 1, 240), ref("Thoran", 2, 180)),
	combo("Malayali", models.MealLunch, "Erissery Thali", 420, 10, 77, 9,
		ref("Steamed Rice", 1, 240), ref("Erissery", 0, 180)),
	combo("Malayali", models.MealDinner, "Light Appam Meal", 320, 7, 48, 9,
		ref("Appam", 3, 180), ref("Chicken Stew", 0.5, 140)),
	combo("Malayali", models.MealDinner, "Fish Light Dinner", 327, 16, 44, 8,
		ref("Steamed Rice", 0.67, 162), ref("Fish Curry (Kerala style)", 0.5, 140), ref("Green Salad", 0, 25)),
	combo("Malayali", models.MealDinner, "Puttu Evening", 320, 11, 56, 4,
		ref("Puttu", 1.5, 210), ref("Kadala Curry", 0.5, 110)),
	combo("Malayali", models.MealDinner, "Simple Rice Meal", 362, 7, 62, 9,
		ref("Steamed Rice", 0.67, 162), ref("Olan", 0, 140), ref("Buttermilk", 0, 60)),
	combo("Malayali", models.MealDinner, "Avial Dinner", 357, 7, 56, 11,
		ref("Steamed Rice", 0.67, 162), ref("Avial", 0, 160), ref("Papad", 0.5, 35)),
	combo("Malayali", models.MealSnack, "Banana Snack", 125, 2, 29, 1,
		ref("Banana", 0, 105), ref("Tea without Sugar", 0, 20)),
	combo("Malayali", models.MealSnack, "Appam Light", 120, 3, 22, 3,
		ref("Appam", 1, 60), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Malayali", models.MealSnack, "Coconut Water", 92, 4, 18, 1,
		ref("Coconut Water", 2, 92)),
	combo("Malayali", models.MealSnack, "Tea Break", 125, 3, 26, 2,
		ref("Masala Chai", 0, 65), ref("Banana", 0, 60)),
	combo("Malayali", models.MealSnack, "Simple Snack", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),

	// Andhra
	combo("Andhra", models.MealBreakfast, "Pesarattu-Upma", 300, 10, 46, 6,
		ref("Pesarattu with Upma", 0, 280), ref("Tea without Sugar", 0, 20)),
	combo("Andhra", models.MealBreakfast, "Idli Andhra Style", 280, 8, 51, 4,
		ref("Idli", 3, 120), ref("Sambar", 0, 120), ref("Coconut Chutney", 2, 40)),
	combo("Andhra", models.MealBreakfast, "Dosa Breakfast", 312, 8, 50, 7,
		ref("Plain Dosa", 1.5, 252), ref("Sambar", 0.5, 60)),
	combo("Andhra", models.MealBreakfast, "Upma Morning", 300, 7, 56, 5,
		ref("Upma", 0, 220), ref("Banana", 0, 60), ref("Tea without Sugar", 0, 20)),
	combo("Andhra", models.MealBreakfast, "Pesarattu Simple", 360, 16, 56, 8,
		ref("Pesarattu", 2, 360)),
	combo("Andhra", models.MealLunch, "Pulihora Meal", 425, 10, 72, 10,
		ref("Pulihora", 0, 300), ref("Raita", 0, 90), ref("Papad", 0.5, 35)),
	combo("Andhra", models.MealLunch, "Pappu Rice", 435, 13, 79, 6,
		ref("Steamed Rice", 1, 240), ref("Pappu", 0, 160), ref("Papad", 0.5, 35)),
	combo("Andhra", models.MealLunch, "Gutti Vankaya Meal", 410, 9, 59, 15,
		ref("Steamed Rice", 0.75, 180), ref("Gutti Vankaya", 0, 200), ref("Raita", 0.33, 30)),
	combo("Andhra", models.MealLunch, "Gongura Chicken", 427, 19, 50, 16,
		ref("Steamed Rice", 0.67, 162), ref("Gongura Chicken", 0.5, 180), ref("Green Salad", 0, 25), ref("Buttermilk", 0, 60)),
	combo("Andhra", models.MealLunch, "Hyderabadi Biryani", 480, 22, 58, 18,
		ref("Hyderabadi Biryani", 0, 480)),
	combo("Andhra", models.MealDinner, "Light Rice Meal", 347, 11, 62, 4,
		ref("Steamed Rice", 0.67, 162), ref("Pappu", 0, 160), ref("Green Salad", 0, 25)),
	combo("Andhra", models.MealDinner, "Pesarattu Dinner", 370, 14, 52, 8,
		ref("Pesarattu", 1.5, 270), ref("Coconut Chutney", 2, 40), ref("Buttermilk", 0, 60)),
	combo("Andhra", models.MealDinner, "Simple Dal Rice", 360, 14, 61, 6,
		ref("Steamed Rice", 0.75, 180), ref("Dal Tadka", 0, 180)),
	combo("Andhra", models.MealDinner, "Gutti Vankaya Light", 340, 8, 48, 12,
		ref("Chapati", 2, 240), ref("Gutti Vankaya", 0.5, 100)),
	combo("Andhra", models.MealDinner, "Dosa Evening", 372, 10, 62, 8,
		ref("Plain Dosa", 1.5, 252), ref("Sambar", 0, 120)),
	combo("Andhra", models.MealSnack, "Tea Time", 120, 3, 24, 2,
		ref("Tea with Milk & Sugar", 0, 60), ref("Banana", 0, 60)),
	combo("Andhra", models.MealSnack, "Light Snack", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),
	combo("Andhra", models.MealSnack, "Idli Snack", 100, 3, 19, 1,
		ref("Idli", 2, 80), ref("Coconut Chutney", 1, 20)),
	combo("Andhra", models.MealSnack, "Simple Tea", 105, 3, 19, 2,
		ref("Masala Chai", 0, 65), ref("Digestive biscuits", 0, 40)),
	combo("Andhra", models.MealSnack, "Coconut Water", 92, 4, 18, 1,
		ref("Coconut Water", 2, 92)),

	// Odia
	combo("Odia", models.MealBreakfast, "Light Pakhala", 290, 6, 63, 2,
		ref("Pakhala Bhata", 0, 160), ref("Green Salad", 0, 25), ref("Banana", 0, 105)),
	combo("Odia", models.MealBreakfast, "Idli Breakfast", 270, 9, 49, 4,
		ref("Idli", 3, 120), ref("Dalma", 0.5, 90), ref("Coconut Chutney", 2, 40), ref("Tea without Sugar", 0, 20)),
	combo("Odia", models.MealBreakfast, "Dosa Morning", 312, 8, 50, 7,
		ref("Plain Dosa", 1.5, 252), ref("Sambar", 0.5, 60)),
	combo("Odia", models.MealBreakfast, "Simple Bread", 320, 18, 28, 15,
		ref("Bread Omelette", 0, 320)),
	combo("Odia", models.MealBreakfast, "Upma Breakfast", 300, 7, 56, 5,
		ref("Upma", 0, 220), ref("Banana", 0, 60), ref("Tea without Sugar", 0, 20)),
	combo("Odia", models.MealLunch, "Dalma Thali", 420, 12, 76, 4,
		ref("Steamed Rice", 1, 240), ref("Dalma", 0, 180)),
	combo("Odia", models.MealLunch, "Fish Besara Meal", 410, 19, 55, 10,
		ref("Steamed Rice", 0.75, 180), ref("Machha Besara", 0.5, 130), ref("Santula", 0, 100)),
	combo("Odia", models.MealLunch, "Prawn Curry Meal", 420, 18, 66, 9,
		ref("Steamed Rice", 1, 240), ref("Chingudi Jhola", 0.5, 120), ref("Green Salad", 0, 25), ref("Papad", 0.5, 35)),
	combo("Odia", models.MealLunch, "Simple Dal Rice", 420, 14, 77, 6,
		ref("Steamed Rice", 1, 240), ref("Dal Tadka", 0, 180)),
	combo("Odia", models.MealLunch, "Dahi Baigana Meal", 435, 10, 67, 11,
		ref("Steamed Rice", 1, 240), ref("Dahi Baigana", 0, 160), ref("Papad", 0.5, 35)),
	combo("Odia", models.MealDinner, "Light Pakhala", 340, 7, 67, 4,
		ref("Pakhala Bhata", 1.5, 240), ref("Santula", 0, 100)),
	combo("Odia", models.MealDinner, "Simple Dalma", 342, 12, 61, 4,
		ref("Steamed Rice", 0.67, 162), ref("Dalma", 0, 180)),
	combo("Odia", models.MealDinner, "Fish Light Dinner", 380, 30, 38, 15,
		ref("Steamed Rice", 0.5, 120), ref("Machha Besara", 0, 260)),
	combo("Odia", models.MealDinner, "Dal-Rice Light", 342, 13, 61, 5,
		ref("Steamed Rice", 0.67, 162), ref("Dal Tadka", 0, 180)),
	combo("Odia", models.MealDinner, "Dahi Baigana Dinner", 382, 9, 60, 11,
		ref("Steamed Rice", 0.67, 162), ref("Dahi Baigana", 0, 160), ref("Buttermilk", 0, 60)),
	combo("Odia", models.MealSnack, "Tea Break", 120, 3, 24, 2,
		ref("Tea with Milk & Sugar", 0, 60), ref("Banana", 0, 60)),
	combo("Odia", models.MealSnack, "Simple Snack", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),
	combo("Odia", models.MealSnack, "Light Tea", 115, 1, 27, 1,
		ref("Tea without Sugar", 0, 20), ref("Apple", 0, 95)),
	combo("Odia", models.MealSnack, "Coconut Water", 92, 4, 18, 1,
		ref("Coconut Water", 2, 92)),
	combo("Odia", models.MealSnack, "Chai Time", 105, 3, 19, 2,
		ref("Masala Chai", 0, 65), ref("Digestive biscuits", 0, 40)),

	// Rajasthani
	combo("Rajasthani", models.MealBreakfast, "Light Paratha", 283, 8, 39, 11,
		ref("Paratha - Plain", 1, 230), ref("Plain Curd", 0.33, 33), ref("Tea without Sugar", 0, 20)),
	combo("Rajasthani", models.MealBreakfast, "Bread & Egg", 300, 17, 30, 11,
		ref("Boiled Egg", 0, 140), ref("Bread", 2, 140), ref("Tea without Sugar", 0, 20)),
	combo("Rajasthani", models.MealBreakfast, "Poori Light", 300, 6, 42, 13,
		ref("Poori", 2, 240), ref("Aloo Curry", 0.33, 60)),
	combo("Rajasthani", models.MealBreakfast, "Chapati Breakfast", 293, 9, 50, 5,
		ref("Chapati", 2, 240), ref("Plain Curd", 0.33, 33), ref("Tea without Sugar", 0, 20)),
	combo("Rajasthani", models.MealBreakfast, "Simple Upma", 300, 7, 56, 5,
		ref("Upma", 0, 220), ref("Banana", 0, 60), ref("Tea without Sugar", 0, 20)),
	combo("Rajasthani", models.MealLunch, "Gatte ki Sabzi Thali", 400, 13, 60, 12,
		ref("Chapati", 2, 240), ref("Gatte ki Sabzi", 0.5, 130), ref("Raita", 0.33, 30)),
	combo("Rajasthani", models.MealLunch, "Ker Sangri Meal", 420, 10, 58, 15,
		ref("Chapati", 2, 240), ref("Ker Sangri", 0, 180)),
	combo("Rajasthani", models.MealLunch, "Dal-Rice Rajasthani", 430, 16, 73, 8,
		ref("Steamed Rice", 0.75, 180), ref("Dal Tadka", 0, 180), ref("Papad", 2, 70)),
	combo("Rajasthani", models.MealLunch, "Simple Roti Meal", 450, 15, 78, 9,
		ref("Chapati", 3, 360), ref("Raita", 0, 90)),
	combo("Rajasthani", models.MealLunch, "Mixed Veg Meal", 460, 11, 70, 12,
		ref("Chapati", 2, 240), ref("Mix Veg Curry", 0, 160), ref("Buttermilk", 0, 60)),
	combo("Rajasthani", models.MealDinner, "Light Roti Dal", 390, 12, 66, 7,
		ref("Chapati", 2, 240), ref("Dal Tadka", 0.5, 90), ref("Buttermilk", 0, 60)),
	combo("Rajasthani", models.MealDinner, "Gatte Light", 370, 12, 54, 12,
		ref("Chapati", 2, 240), ref("Gatte ki Sabzi", 0.5, 130)),
	combo("Rajasthani", models.MealDinner, "Simple Rice Meal", 342, 13, 61, 5,
		ref("Steamed Rice", 0.67, 162), ref("Dal Tadka", 0, 180)),
	combo("Rajasthani", models.MealDinner, "Ker Sangri Dinner", 360, 10, 52, 11,
		ref("Chapati", 2, 240), ref("Ker Sangri", 0.5, 90), ref("Raita", 0.33, 30)),
	combo("Rajasthani", models.MealDinner, "Light Khichdi", 345, 13, 57, 5,
		ref("Dal Khichdi", 1.5, 315), ref("Raita", 0.33, 30)),
	combo("Rajasthani", models.MealSnack, "Kachori Mini", 130, 4, 19, 4.5,
		ref("Kachori", 0.25, 70), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Rajasthani", models.MealSnack, "Mirchi Vada", 90, 2, 10, 4.5,
		ref("Mirchi Vada", 0.5, 90)),
	combo("Rajasthani", models.MealSnack, "Tea Break", 100, 3, 18, 3,
		ref("Tea with Milk & Sugar", 0, 60), ref("Digestive biscuits", 0, 40)),
	combo("Rajasthani", models.MealSnack, "Buttermilk Snack", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),
	combo("Rajasthani", models.MealSnack, "Fruit Break", 115, 1, 27, 1,
		ref("Apple", 0, 95), ref("Tea without Sugar", 0, 20)),

	// Bihari
	combo("Bihari", models.MealBreakfast, "Sattu Paratha", 293, 11, 44, 10,
		ref("Sattu Paratha", 0, 260), ref("Plain Curd", 0.33, 33)),
	combo("Bihari", models.MealBreakfast, "Light Litti", 290, 7, 45, 8,
		ref("Litti Chokha", 1, 190), ref("Chokha", 0.2, 40), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Bihari", models.MealBreakfast, "Simple Paratha", 276, 6, 33, 12,
		ref("Paratha - Plain", 1, 230), ref("Pickle", 0, 26), ref("Tea without Sugar", 0, 20)),
	combo("Bihari", models.MealBreakfast, "Bread Breakfast", 320, 18, 28, 15,
		ref("Bread Omelette", 0, 320)),
	combo("Bihari", models.MealBreakfast, "Poori Morning", 300, 6, 42, 13,
		ref("Poori", 2, 240), ref("Aloo Curry", 0.33, 60)),
	combo("Bihari", models.MealLunch, "Litti Chokha Meal", 400, 10, 58, 12,
		ref("Litti Chokha", 0, 380), ref("Onion Salad", 0, 20)),
	combo("Bihari", models.MealLunch, "Ghugni Thali", 460, 16, 78, 8,
		ref("Chapati", 2, 240), ref("Ghugni", 0, 220)),
	combo("Bihari", models.MealLunch, "Dal-Rice Simple", 420, 14, 77, 6,
		ref("Steamed Rice", 1, 240), ref("Dal Tadka", 0, 180)),
	combo("Bihari", models.MealLunch, "Sattu Meal", 420, 16, 60, 14,
		ref("Sattu Paratha", 1.5, 390), ref("Raita", 0.33, 30)),
	combo("Bihari", models.MealLunch, "Mixed Meal", 460, 11, 70, 12,
		ref("Chapati", 2, 240), ref("Mix Veg Curry", 0, 160), ref("Buttermilk", 0, 60)),
	combo("Bihari", models.MealDinner, "Light Litti", 380, 10, 58, 12,
		ref("Litti Chokha", 2, 380)),
	combo("Bihari", models.MealDinner, "Dal-Roti", 355, 11, 62, 6,
		ref("Chapati", 2, 240), ref("Dal Tadka", 0.5, 90), ref("Green Salad", 0, 25)),
	combo("Bihari", models.MealDinner, "Sattu Dinner", 358, 16, 50, 11,
		ref("Sattu Paratha", 0, 260), ref("Plain Curd", 0, 98)),
	combo("Bihari", models.MealDinner, "Simple Rice Meal", 362, 13, 59, 7,
		ref("Steamed Rice", 0.67, 162), ref("Ghugni", 0.5, 110), ref("Raita", 0, 90)),
	combo("Bihari", models.MealDinner, "Light Khichdi", 345, 13, 57, 5,
		ref("Dal Khichdi", 1.5, 315), ref("Raita", 0.33, 30)),
	combo("Bihari", models.MealSnack, "Tea Break", 120, 3, 24, 2,
		ref("Tea with Milk & Sugar", 0, 60), ref("Banana", 0, 60)),
	combo("Bihari", models.MealSnack, "Light Snack", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),
	combo("Bihari", models.MealSnack, "Samosa Mini", 97, 2, 11, 4,
		ref("Samosa", 0.25, 77), ref("Tea without Sugar", 0, 20)),
	combo("Bihari", models.MealSnack, "Simple Tea", 105, 3, 19, 2,
		ref("Masala Chai", 0, 65), ref("Digestive biscuits", 0, 40)),
	combo("Bihari", models.MealSnack, "Fruit Break", 115, 1, 27, 1,
		ref("Apple", 0, 95), ref("Tea without Sugar", 0, 20)),

	// North-Eastern
	combo("North-Eastern", models.MealBreakfast, "Momos Breakfast", 312, 8, 54, 7,
		ref("Momos (Veg)", 4, 192), ref("Tea with Milk & Sugar", 0, 60), ref("Banana", 0, 60)),
	combo("North-Eastern", models.MealBreakfast, "Thukpa Light", 320, 14, 48, 8,
		ref("Thukpa", 0, 320)),
	combo("North-Eastern", models.MealBreakfast, "Simple Bread", 320, 18, 28, 15,
		ref("Bread Omelette", 0, 320)),
	combo("North-Eastern", models.MealBreakfast, "Rice Breakfast", 275, 9, 39, 7.5,
		ref("Jadoh", 0.75, 255), ref("Tea without Sugar", 0, 20)),
	combo("North-Eastern", models.MealBreakfast, "Light Momos", 300, 9, 48, 7,
		ref("Momos (Veg)", 5, 240), ref("Tea with Milk & Sugar", 0, 60)),
	combo("North-Eastern", models.MealLunch, "Momos Meal", 440, 23, 60, 10,
		ref("Momos (Chicken)", 5, 280), ref("Thukpa", 0.5, 160)),
	combo("North-Eastern", models.MealLunch, "Thukpa Complete", 480, 21, 72, 12,
		ref("Thukpa", 1.5, 480)),
	combo("North-Eastern", models.MealLunch, "Jadoh Meal", 455, 15, 64, 13,
		ref("Jadoh", 0, 340), ref("Green Salad", 0, 25), ref("Raita", 0, 90)),
	combo("North-Eastern", models.MealLunch, "Fish Tenga Meal", 460, 28, 63, 10.5,
		ref("Steamed Rice", 1, 240), ref("Fish Tenga", 0, 220)),
	combo("North-Eastern", models.MealLunch, "Mixed Momos", 388, 18, 57, 8,
		ref("Momos (Chicken)", 4, 224), ref("Momos (Veg)", 3, 144), ref("Tea without Sugar", 0, 20)),
	combo("North-Eastern", models.MealDinner, "Light Momos", 355, 11, 54, 10,
		ref("Momos (Veg)", 5, 240), ref("Green Salad", 0, 25), ref("Raita", 0, 90)),
	combo("North-Eastern", models.MealDinner, "Thukpa Dinner", 345, 14, 53, 8,
		ref("Thukpa", 0, 320), ref("Green Salad", 0, 25)),
	combo("North-Eastern", models.MealDinner, "Rice Light Meal", 362, 17, 50, 10,
		ref("Steamed Rice", 0.67, 162), ref("Fish Tenga", 0.5, 110), ref("Raita", 0, 90)),
	combo("North-Eastern", models.MealDinner, "Jadoh Dinner", 340, 12, 52, 10,
		ref("Jadoh", 0, 340)),
	combo("North-Eastern", models.MealDinner, "Simple Momos", 369, 22, 44, 11,
		ref("Momos (Chicken)", 4, 224), ref("Green Salad", 0, 25), ref("Buttermilk", 2, 120)),
	combo("North-Eastern", models.MealSnack, "Momos Snack", 96, 3, 15, 2.4,
		ref("Momos (Veg)", 2, 96)),
	combo("North-Eastern", models.MealSnack, "Tea Break", 120, 3, 24, 2,
		ref("Tea with Milk & Sugar", 0, 60), ref("Banana", 0, 60)),
	combo("North-Eastern", models.MealSnack, "Light Tea", 105, 3, 19, 2,
		ref("Masala Chai", 0, 65), ref("Digestive biscuits", 0, 40)),
	combo("North-Eastern", models.MealSnack, "Simple Snack", 115, 1, 27, 1,
		ref("Tea without Sugar", 0, 20), ref("Apple", 0, 95)),
	combo("North-Eastern", models.MealSnack, "Buttermilk Break", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),

	// Kashmiri
	combo("Kashmiri", models.MealBreakfast, "Simple Roti", 293, 9, 50, 5,
		ref("Chapati", 2, 240), ref("Plain Curd", 0.33, 33), ref("Tea without Sugar", 0, 20)),
	combo("Kashmiri", models.MealBreakfast, "Bread & Egg", 300, 17, 30, 11,
		ref("Boiled Egg", 0, 140), ref("Bread", 2, 140), ref("Tea without Sugar", 0, 20)),
	combo("Kashmiri", models.MealBreakfast, "Light Paratha", 320, 8, 41, 13,
		ref("Paratha - Plain", 1, 230), ref("Raita", 0.33, 30), ref("Tea with Milk & Sugar", 0, 60)),
	combo("Kashmiri", models.MealBreakfast, "Poori Morning", 300, 6, 42, 13,
		ref("Poori", 2, 240), ref("Aloo Curry", 0.33, 60)),
	combo("Kashmiri", models.MealBreakfast, "Simple Upma", 300, 7, 56, 5,
		ref("Upma", 0, 220), ref("Banana", 0, 60), ref("Tea without Sugar", 0, 20)),
	combo("Kashmiri", models.MealLunch, "Rogan Josh Meal", 402, 18, 41, 19,
		ref("Steamed Rice", 0.67, 162), ref("Rogan Josh", 0.5, 240)),
	combo("Kashmiri", models.MealLunch, "Yakhni Rice", 482, 30, 47, 21,
		ref("Steamed Rice", 0.67, 162), ref("Yakhni", 0, 320)),
	combo("Kashmiri", models.MealLunch, "Dum Aloo Meal", 460, 8, 72, 15,
		ref("Steamed Rice", 0.75, 180), ref("Dum Aloo Kashmiri", 0, 280)),
	combo("Kashmiri", models.MealLunch, "Nadru Yakhni Thali", 420, 8, 77, 9,
		ref("Steamed Rice", 1, 240), ref("Nadru Yakhni", 0, 180)),
	combo("Kashmiri", models.MealLunch, "Simple Roti Meal", 480, 18, 48, 20,
		ref("Chapati", 2, 240), ref("Rogan Josh", 0.5, 240)),
	combo("Kashmiri", models.MealDinner, "Light Dum Aloo", 400, 6, 62, 15,
		ref("Steamed Rice", 0.5, 120), ref("Dum Aloo Kashmiri", 0, 280)),
	combo("Kashmiri", models.MealDinner, "Simple Rice Meal", 342, 8, 61, 9,
		ref("Steamed Rice", 0.67, 162), ref("Nadru Yakhni", 0, 180)),
	combo("Kashmiri", models.MealDinner, "Light Yakhni", 440, 28, 37, 21,
		ref("Steamed Rice", 0.5, 120), ref("Yakhni", 0, 320)),
	combo("Kashmiri", models.MealDinner, "Roti Dinner", 380, 7, 50, 16,
		ref("Chapati", 2, 240), ref("Dum Aloo Kashmiri", 0.5, 140)),
	combo("Kashmiri", models.MealDinner, "Light Dal", 342, 13, 61, 5,
		ref("Steamed Rice", 0.67, 162), ref("Dal Tadka", 0, 180)),
	combo("Kashmiri", models.MealSnack, "Tea Break", 120, 3, 24, 2,
		ref("Tea with Milk & Sugar", 0, 60), ref("Banana", 0, 60)),
	combo("Kashmiri", models.MealSnack, "Simple Tea", 105, 3, 19, 2,
		ref("Masala Chai", 0, 65), ref("Digestive biscuits", 0, 40)),
	combo("Kashmiri", models.MealSnack, "Light Snack", 120, 6, 16, 3,
		ref("Buttermilk", 2, 120)),
	combo("Kashmiri", models.MealSnack, "Fruit Break", 115, 1, 27, 1,
		ref("Apple", 0, 95), ref("Tea without Sugar", 0, 20)),
	combo("Kashmiri", models.MealSnack, "Simple Chai", 60, 2, 10, 2,
		ref("Tea with Milk & Sugar", 0, 60)),

	// Snacks (street food; snack slot only)
	combo("Snacks", models.MealSnack, "Pani Puri", 120, 3, 23, 2.5,
		ref("Pani Puri", 0.5, 120)),
	combo("Snacks", models.MealSnack, "Bhel Puri", 110, 2.5, 18, 3.5,
		ref("Bhel Puri", 0.5, 110)),
	combo("Snacks", models.MealSnack, "Samosa", 154, 3, 19, 7.5,
		ref("Samosa", 0.5, 154)),
	combo("Snacks", models.MealSnack, "Pakora", 120, 3, 14, 6,
		ref("Pakora", 0.5, 120)),
	combo("Snacks", models.MealSnack, "Aloo Tikki", 110, 2, 16, 4.5,
		ref("Aloo Tikki", 0.5, 110)),
}

// Combinations returns the authored combination templates.
func Combinations() []models.ComboTemplate {
	return combinations
}
