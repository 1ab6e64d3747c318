package dataset

// culturalFacts is the curated knowledge base about Indian cultural
// heritage. Order matters: lookups return the first match.
var culturalFacts = []Fact{
	// Traditional arts
	{
		Question: "What is Kathakali?",
		Answer:   "Kathakali is a classical dance-drama from Kerala, known for its elaborate costumes, makeup, and expressive movements. It combines dance, music, and acting to tell stories from Hindu epics like the Mahabharata and Ramayana.",
		Category: "Traditional Arts",
		Keywords: []string{"kathakali", "kerala", "dance", "drama", "classical"},
	},
	{
		Question: "What is Bharatanatyam?",
		Answer:   "Bharatanatyam is one of the oldest classical dance forms of India, originating from Tamil Nadu. It's characterized by precise footwork, expressive hand gestures (mudras), and intricate facial expressions.",
		Category: "Traditional Arts",
		Keywords: []string{"bharatanatyam", "tamil nadu", "classical dance", "mudras"},
	},
	{
		Question: "What is Madhubani painting?",
		Answer:   "Madhubani painting is a traditional folk art from Bihar, characterized by geometric patterns, bright colors, and depictions of nature, mythology, and daily life. It's typically done on walls, floors, or paper.",
		Category: "Traditional Arts",
		Keywords: []string{"madhubani", "bihar", "painting", "folk art", "geometric"},
	},
	{
		Question: "Which state is famous for Madhubani art?",
		Answer:   "Bihar is famous for Madhubani art. This traditional folk painting originated in the Mithila region of Bihar and is known for its intricate geometric patterns and vibrant colors.",
		Category: "Traditional Arts",
		Keywords: []string{"madhubani", "bihar", "mithila", "painting", "folk art"},
	},

	// Crafts and handicrafts
	{
		Question: "Which Indian state is famous for bamboo crafts?",
		Answer:   "Assam is famous for bamboo crafts. The state produces a wide variety of bamboo products including furniture, baskets, mats, and decorative items. Bamboo is an integral part of Assamese culture and daily life.",
		Category: "Crafts & Handicrafts",
		Keywords: []string{"bamboo", "assam", "crafts", "furniture", "baskets"},
	},
	{
		Question: "What are the traditional crafts of Rajasthan?",
		Answer:   "Rajasthan is famous for its traditional crafts including blue pottery, block printing, tie-dye (bandhani), miniature paintings, marble work, and jewelry. Each region has its own specialty.",
		Category: "Crafts & Handicrafts",
		Keywords: []string{"rajasthan", "blue pottery", "block printing", "bandhani", "miniature paintings"},
	},
	{
		Question: "What are the traditional crafts of Kashmir?",
		Answer:   "Kashmir is renowned for its traditional crafts including Pashmina shawls, Kashmiri carpets, papier-mâché, wood carving, and silver jewelry. These crafts reflect the rich cultural heritage of the region.",
		Category: "Crafts & Handicrafts",
		Keywords: []string{"kashmir", "pashmina", "carpets", "papier-mâché", "wood carving"},
	},

	// Historical monuments
	{
		Question: "What is the story of Konark Sun Temple?",
		Answer:   "The Konark Sun Temple in Odisha was built in the 13th century by King Narasimhadeva I. It's designed as a massive chariot with 12 pairs of wheels pulled by seven horses, dedicated to the Sun God Surya. The temple is a UNESCO World Heritage Site.",
		Category: "Historical Monuments",
		Keywords: []string{"konark", "sun temple", "odisha", "surya", "unesco", "chariot"},
	},
	{
		Question: "Tell me about the Taj Mahal",
		Answer:   "The Taj Mahal is a white marble mausoleum in Agra, built by Mughal Emperor Shah Jahan in memory of his wife Mumtaz Mahal. Completed in 1653, it's considered one of the Seven Wonders of the World and a UNESCO World Heritage Site.",
		Category: "Historical Monuments",
		Keywords: []string{"taj mahal", "agra", "shah jahan", "mumtaz mahal", "marble", "unesco"},
	},
	{
		Question: "Tell me about Ajanta Caves",
		Answer:   "The Ajanta Caves in Maharashtra are a series of 30 Buddhist cave monuments dating from the 2nd century BCE to about 480 CE. They contain magnificent paintings and sculptures depicting the life of Buddha and Jataka tales.",
		Category: "Historical Monuments",
		Keywords: []string{"ajanta", "caves", "maharashtra", "buddhist", "paintings", "sculptures"},
	},
	{
		Question: "Explain the architecture of Hampi",
		Answer:   "Hampi in Karnataka was the capital of the Vijayanagara Empire. Its architecture features massive stone temples, intricate carvings, and unique structures like the Vitthala Temple with its musical pillars and the iconic stone chariot.",
		Category: "Historical Monuments",
		Keywords: []string{"hampi", "karnataka", "vijayanagara", "vitthala temple", "musical pillars", "stone chariot"},
	},

	// Festivals
	{
		Question: "What is the significance of Diwali?",
		Answer:   "Diwali, the Festival of Lights, celebrates the victory of light over darkness and good over evil. It commemorates Lord Rama's return to Ayodhya after defeating Ravana. People light diyas, exchange sweets, and celebrate with fireworks.",
		Category: "Festivals",
		Keywords: []string{"diwali", "festival of lights", "rama", "ayodhya", "ravana", "diyas"},
	},
	{
		Question: "Tell me about Holi festival",
		Answer:   "Holi is the Festival of Colors, celebrating the arrival of spring and the victory of good over evil. It commemorates the story of Prahlada and Holika. People throw colored powders, dance, and celebrate with music and sweets.",
		Category: "Festivals",
		Keywords: []string{"holi", "festival of colors", "spring", "prahlada", "holika", "colors"},
	},
	{
		Question: "What is Navratri about?",
		Answer:   "Navratri is a nine-night festival dedicated to the worship of Goddess Durga in her various forms. It celebrates the victory of good over evil and includes fasting, dancing (especially Garba and Dandiya), and elaborate rituals.",
		Category: "Festivals",
		Keywords: []string{"navratri", "durga", "nine nights", "garba", "dandiya", "goddess"},
	},

	// Regional cuisines
	{
		Question: "What are the famous dishes of Kerala?",
		Answer:   "Kerala is famous for its coconut-based cuisine including appam, puttu, fish curry, beef fry, and traditional sadya (feast). The state's cuisine is known for its use of coconut, curry leaves, and spices.",
		Category: "Regional Cuisines",
		Keywords: []string{"kerala", "coconut", "appam", "puttu", "fish curry", "sadya"},
	},
	{
		Question: "Tell me about Rajasthani cuisine",
		Answer:   "Rajasthani cuisine is known for its rich, spicy flavors and includes dishes like dal baati churma, gatte ki sabzi, ker sangri, and various sweets like ghewar and malpua. It's designed to withstand the desert climate.",
		Category: "Regional Cuisines",
		Keywords: []string{"rajasthan", "dal baati churma", "gatte", "ker sangri", "ghewar", "desert"},
	},
	{
		Question: "What is the specialty of Bengali food?",
		Answer:   "Bengali cuisine is famous for its fish dishes, especially hilsa fish, sweets like rasgulla and sandesh, and rice-based meals. The cuisine emphasizes the balance of sweet, sour, and spicy flavors.",
		Category: "Regional Cuisines",
		Keywords: []string{"bengali", "fish", "hilsa", "rasgulla", "sandesh", "rice"},
	},

	// Traditional attire
	{
		Question: "What is the traditional attire of Rajasthan?",
		Answer:   "Rajasthan's traditional attire includes colorful ghagra-choli for women with intricate mirror work and embroidery, and dhoti-kurta or angarkha for men. Turbans (pagri) are an important part of men's traditional dress.",
		Category: "Traditional Attire",
		Keywords: []string{"rajasthan", "ghagra-choli", "dhoti-kurta", "angarkha", "turban", "pagri"},
	},
	{
		Question: "What is the traditional dress of Kerala?",
		Answer:   "Kerala's traditional attire includes the white mundu (dhoti) and shirt for men, and the white saree with golden border (kasavu saree) for women. These are commonly worn during festivals and special occasions.",
		Category: "Traditional Attire",
		Keywords: []string{"kerala", "mundu", "kasavu saree", "white", "golden border", "traditional"},
	},

	// States and geography
	{
		Question: "Which state is Kerala in?",
		Answer:   "Kerala itself is a state in South India, located on the Malabar Coast. It's bordered by Karnataka to the north, Tamil Nadu to the east, and the Arabian Sea to the west.",
		Category: "Geography",
		Keywords: []string{"kerala", "south india", "malabar coast", "karnataka", "tamil nadu", "arabian sea"},
	},
	{
		Question: "What is the capital of Rajasthan?",
		Answer:   "Jaipur is the capital of Rajasthan. It's known as the 'Pink City' due to the pink-colored buildings in its old city, and is famous for its palaces, forts, and vibrant culture.",
		Category: "Geography",
		Keywords: []string{"rajasthan", "jaipur", "pink city", "capital", "palaces", "forts"},
	},

	// Northeast India
	{
		Question: "What is the Hornbill Festival?",
		Answer:   "The Hornbill Festival is a major cultural event held in Nagaland every December, celebrating the heritage of the Naga tribes with traditional music, dance, crafts, and food.",
		Category: "Festivals",
		Keywords: []string{"hornbill", "nagaland", "naga tribes", "festival", "dance", "music"},
	},
	{
		Question: "Tell me about Assam's Bihu festival",
		Answer:   "Bihu is the most important festival of Assam, marking the Assamese New Year and the change of seasons. It is celebrated with folk dances, songs, and feasts.",
		Category: "Festivals",
		Keywords: []string{"bihu", "assam", "new year", "folk dance", "festival"},
	},

	// South India
	{
		Question: "What is the significance of Pongal?",
		Answer:   "Pongal is a harvest festival celebrated in Tamil Nadu, dedicated to the Sun God. People prepare a special dish called 'Pongal' and thank nature for a good harvest.",
		Category: "Festivals",
		Keywords: []string{"pongal", "tamil nadu", "harvest", "sun god", "festival"},
	},
	{
		Question: "Describe the Meenakshi Temple",
		Answer:   "The Meenakshi Temple in Madurai, Tamil Nadu, is a historic Hindu temple dedicated to Goddess Meenakshi and Lord Sundareswarar. It is renowned for its towering gopurams (gateway towers) and intricate sculptures.",
		Category: "Historical Monuments",
		Keywords: []string{"meenakshi", "madurai", "tamil nadu", "temple", "gopuram", "sculpture"},
	},

	// Tribal culture
	{
		Question: "What is Warli art?",
		Answer:   "Warli art is a tribal art form from Maharashtra, characterized by simple white patterns on mud walls, depicting daily life, nature, and rituals.",
		Category: "Traditional Arts",
		Keywords: []string{"warli", "maharashtra", "tribal", "art", "mud walls"},
	},

	// Unique monuments
	{
		Question: "Tell me about Sanchi Stupa",
		Answer:   "The Sanchi Stupa in Madhya Pradesh is one of the oldest stone structures in India, built by Emperor Ashoka in the 3rd century BCE. It is a UNESCO World Heritage Site and an important Buddhist monument.",
		Category: "Historical Monuments",
		Keywords: []string{"sanchi", "stupa", "madhya pradesh", "ashoka", "buddhist", "unesco"},
	},
	{
		Question: "What is the Gateway of India?",
		Answer:   "The Gateway of India is an iconic arch monument in Mumbai, Maharashtra, built in 1924 to commemorate the visit of King George V and Queen Mary. It overlooks the Arabian Sea.",
		Category: "Historical Monuments",
		Keywords: []string{"gateway of india", "mumbai", "maharashtra", "monument", "arabian sea"},
	},

	// Unique attire
	{
		Question: "What is the traditional dress of Nagaland?",
		Answer:   "Traditional Naga attire includes colorful shawls, headgear adorned with feathers, and jewelry made from beads and brass. Each tribe has its own distinctive patterns and styles.",
		Category: "Traditional Attire",
		Keywords: []string{"nagaland", "naga", "shawl", "headgear", "tribe", "attire"},
	},

	// Unique cuisine
	{
		Question: "What is the specialty of Goan cuisine?",
		Answer:   "Goan cuisine is known for its seafood, coconut, rice, and spices. Popular dishes include fish curry rice, vindaloo, and bebinca (a traditional dessert).",
		Category: "Regional Cuisines",
		Keywords: []string{"goa", "goan", "cuisine", "seafood", "vindaloo", "bebinca"},
	},

	// State-specific cultural facts
	{
		Question: "What is unique about Chhattisgarh's Bastar art?",
		Answer:   "Bastar art from Chhattisgarh is famous for its intricate metalwork, especially Dhokra art, and vibrant tribal crafts made by the local communities.",
		Category: "Traditional Arts",
		Keywords: []string{"chhattisgarh", "bastar", "dhokra", "tribal", "metalwork"},
	},
	{
		Question: "Tell me about Assam's tea culture.",
		Answer:   "Assam is world-renowned for its tea gardens. Assam Tea is known for its bold flavor and is a major export, with tea festivals and estate tours being popular cultural experiences.",
		Category: "Regional Cuisines",
		Keywords: []string{"assam", "tea", "tea gardens", "festival", "estate"},
	},
	{
		Question: "What is the Hornbill Festival of Nagaland?",
		Answer:   "The Hornbill Festival, held in Nagaland, is a vibrant celebration of Naga tribal culture, featuring traditional dances, music, crafts, and indigenous games.",
		Category: "Festivals",
		Keywords: []string{"nagaland", "hornbill", "festival", "naga", "tribal"},
	},
	{
		Question: "What is special about Gujarat's Navratri?",
		Answer:   "Navratri in Gujarat is celebrated with nine nights of Garba and Dandiya Raas dances, colorful attire, and devotion to Goddess Durga. It is one of the largest dance festivals in the world.",
		Category: "Festivals",
		Keywords: []string{"gujarat", "navratri", "garba", "dandiya", "durga"},
	},
	{
		Question: "Describe the living root bridges of Meghalaya.",
		Answer:   "Meghalaya is famous for its living root bridges, ingeniously grown from the roots of rubber trees by the Khasi and Jaintia tribes. These bridges are unique to the region and symbolize harmony with nature.",
		Category: "Historical Monuments",
		Keywords: []string{"meghalaya", "living root bridges", "khasi", "jaintia", "nature"},
	},
	{
		Question: "What is the traditional dance of Manipur?",
		Answer:   "Manipuri dance is a classical dance form from Manipur, known for its graceful movements and themes based on the love story of Radha and Krishna.",
		Category: "Traditional Arts",
		Keywords: []string{"manipur", "manipuri dance", "radha", "krishna", "classical"},
	},
	{
		Question: "What is unique about Sikkim's monasteries?",
		Answer:   "Sikkim is home to ancient Buddhist monasteries like Rumtek and Pemayangtse, which are centers of spiritual learning and vibrant festivals like Losar and Pang Lhabsol.",
		Category: "Historical Monuments",
		Keywords: []string{"sikkim", "monastery", "rumtek", "pemayangtse", "buddhist"},
	},
	{
		Question: "What is the famous craft of Tripura?",
		Answer:   "Tripura is known for its exquisite bamboo and cane crafts, including baskets, mats, and furniture, reflecting the skill of its tribal artisans.",
		Category: "Crafts & Handicrafts",
		Keywords: []string{"tripura", "bamboo", "cane", "craft", "tribal"},
	},
	{
		Question: "What is the significance of Punjab's Baisakhi festival?",
		Answer:   "Baisakhi is a major harvest festival in Punjab, marking the Punjabi New Year and the founding of the Khalsa. It is celebrated with energetic Bhangra and Gidda dances.",
		Category: "Festivals",
		Keywords: []string{"punjab", "baisakhi", "harvest", "khalsa", "bhangra"},
	},
	{
		Question: "What is the traditional attire of Himachal Pradesh?",
		Answer:   "Himachal Pradesh's traditional attire includes colorful woolen caps (topi), cholas, and shawls, reflecting the region's cold climate and vibrant culture.",
		Category: "Traditional Attire",
		Keywords: []string{"himachal pradesh", "topi", "shawl", "chola", "woolen"},
	},
	{
		Question: "What is the famous art of Madhya Pradesh?",
		Answer:   "Madhya Pradesh is known for Gond art, a tribal painting style featuring intricate patterns and vibrant colors, often depicting nature and folklore.",
		Category: "Traditional Arts",
		Keywords: []string{"madhya pradesh", "gond art", "tribal", "painting", "folklore"},
	},
	{
		Question: "What is the main festival of Odisha?",
		Answer:   "Rath Yatra is Odisha's grand chariot festival, celebrated at the Jagannath Temple in Puri, where massive chariots carry the deities through the streets.",
		Category: "Festivals",
		Keywords: []string{"odisha", "rath yatra", "jagannath", "puri", "chariot"},
	},
	{
		Question: "What is the famous cuisine of Telangana?",
		Answer:   "Telangana is known for its spicy Hyderabadi biryani, a fragrant rice dish with marinated meat, saffron, and aromatic spices, as well as tangy tamarind-based curries.",
		Category: "Regional Cuisines",
		Keywords: []string{"telangana", "hyderabadi biryani", "cuisine", "spicy", "tamarind"},
	},
	{
		Question: "What is the traditional dance of Andhra Pradesh?",
		Answer:   "Kuchipudi is the classical dance form of Andhra Pradesh, known for its expressive storytelling, fast rhythms, and dramatic characterizations.",
		Category: "Traditional Arts",
		Keywords: []string{"andhra pradesh", "kuchipudi", "dance", "classical", "storytelling"},
	},
	{
		Question: "What is the famous festival of West Bengal?",
		Answer:   "Durga Puja is West Bengal's most celebrated festival, marked by elaborate pandals, artistic idols, and cultural performances honoring Goddess Durga.",
		Category: "Festivals",
		Keywords: []string{"west bengal", "durga puja", "festival", "goddess", "pandal"},
	},
	{
		Question: "What is the unique craft of Jharkhand?",
		Answer:   "Jharkhand is known for its tribal Sohrai and Khovar paintings, which decorate village walls with natural colors and motifs inspired by nature.",
		Category: "Crafts & Handicrafts",
		Keywords: []string{"jharkhand", "sohrai", "khovar", "tribal", "painting"},
	},
	{
		Question: "What is the famous monument of Uttar Pradesh?",
		Answer:   "The Taj Mahal in Agra, Uttar Pradesh, is a UNESCO World Heritage Site and one of the Seven Wonders of the World, renowned for its white marble beauty and Mughal architecture.",
		Category: "Historical Monuments",
		Keywords: []string{"uttar pradesh", "taj mahal", "agra", "unesco", "mughal"},
	},
	{
		Question: "What is the traditional music of Rajasthan?",
		Answer:   "Rajasthan is famous for its folk music, especially the soulful tunes of the Manganiyar and Langha communities, using instruments like the sarangi and dholak.",
		Category: "Traditional Arts",
		Keywords: []string{"rajasthan", "folk music", "manganiyar", "langha", "sarangi"},
	},
	{
		Question: "What is the famous festival of Tamil Nadu?",
		Answer:   "Pongal is the most important festival of Tamil Nadu, celebrated as a harvest festival with the preparation of the sweet dish 'Pongal' and traditional rituals.",
		Category: "Festivals",
		Keywords: []string{"tamil nadu", "pongal", "harvest", "festival", "sweet dish"},
	},
	{
		Question: "What is the unique tradition of Uttarakhand?",
		Answer:   "Uttarakhand is known for its Nanda Devi Raj Jat Yatra, a grand pilgrimage and festival that takes place once every 12 years, celebrating the region's spiritual heritage.",
		Category: "Festivals",
		Keywords: []string{"uttarakhand", "nanda devi", "raj jat", "yatra", "pilgrimage"},
	},
}
