package states

// indianStates mirrors the state list shown by the frontend. Order matters:
// Match scans it front to back.
var indianStates = []State{
	{Slug: "andhra-pradesh", Name: "Andhra Pradesh", Intro: "Known for its rich Telugu culture, classical dance Kuchipudi, and the Tirupati Temple."},
	{Slug: "arunachal-pradesh", Name: "Arunachal Pradesh", Intro: "Land of the rising sun with diverse tribal cultures and Tawang Monastery."},
	{Slug: "assam", Name: "Assam", Intro: "Famous for Assam tea, Bihu festivals, and Kaziranga’s one-horned rhinoceros."},
	{Slug: "bihar", Name: "Bihar", Intro: "Birthplace of Buddhism; home to Nalanda and the sacred Bodh Gaya."},
	{Slug: "chhattisgarh", Name: "Chhattisgarh", Intro: "Tribal heritage, Chitrakote Falls, and traditional Bastar art forms."},
	{Slug: "goa", Name: "Goa", Intro: "Beaches, Portuguese-era churches, and Indo-Portuguese cuisine."},
	{Slug: "gujarat", Name: "Gujarat", Intro: "Land of Gandhi, Navratri Garba, and the white sands of Kutch."},
	{Slug: "haryana", Name: "Haryana", Intro: "Agricultural strength, wrestling traditions, and Kurukshetra."},
	{Slug: "himachal-pradesh", Name: "Himachal Pradesh", Intro: "Snow-capped mountains, apple orchards, and serene temples."},
	{Slug: "jharkhand", Name: "Jharkhand", Intro: "Mineral-rich land, tribal culture, and Parasnath Hill."},
	{Slug: "karnataka", Name: "Karnataka", Intro: "Carnatic music, Mysore silk, and Hampi ruins."},
	{Slug: "kerala", Name: "Kerala", Intro: "God’s Own Country with backwaters, Ayurveda, and Kathakali."},
	{Slug: "madhya-pradesh", Name: "Madhya Pradesh", Intro: "Khajuraho temples, Bandhavgarh tigers, and Gond art."},
	{Slug: "maharashtra", Name: "Maharashtra", Intro: "Maratha forts, Mumbai cinema, and Ajanta–Ellora caves."},
	{Slug: "manipur", Name: "Manipur", Intro: "Manipuri dance, Loktak Lake, and rich tribal traditions."},
	{Slug: "meghalaya", Name: "Meghalaya", Intro: "Living root bridges, caves, and Khasi culture."},
	{Slug: "mizoram", Name: "Mizoram", Intro: "Bamboo dance Cheraw, weaving, and hill vistas."},
	{Slug: "nagaland", Name: "Nagaland", Intro: "Hornbill Festival and Naga tribal customs."},
	{Slug: "odisha", Name: "Odisha", Intro: "Konark Sun Temple and Odissi dance."},
	{Slug: "punjab", Name: "Punjab", Intro: "Bhangra, Golden Temple, and vibrant farms."},
	{Slug: "rajasthan", Name: "Rajasthan", Intro: "Forts, palaces, and colorful attire of the Thar."},
	{Slug: "sikkim", Name: "Sikkim", Intro: "Buddhist monasteries and organic farming."},
	{Slug: "tamil-nadu", Name: "Tamil Nadu", Intro: "Dravidian temples, Bharatanatyam, and silk."},
	{Slug: "telangana", Name: "Telangana", Intro: "Hyderabadi biryani, Charminar, and tech hubs."},
	{Slug: "tripura", Name: "Tripura", Intro: "Bamboo crafts, palaces, and temples."},
	{Slug: "uttar-pradesh", Name: "Uttar Pradesh", Intro: "Ganga ghats, Taj Mahal, and Awadhi culture."},
	{Slug: "uttarakhand", Name: "Uttarakhand", Intro: "Char Dham, Garhwal, and Kumaon Himalayas."},
	{Slug: "west-bengal", Name: "West Bengal", Intro: "Durga Puja, literature, and Howrah Bridge."},
}
