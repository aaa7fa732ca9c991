package knowledge

// MonumentGreeting binds a monument to its canonical greeting. NameKey is
// the colloquial name users type ("taj mahal"); Phrase is the signature the
// classifier scans prior AI turns for when suppressing repeat greetings;
// Response is the full canned greeting text.
type MonumentGreeting struct {
	MonumentID string
	NameKey    string
	Phrase     string
	Response   string
}

// MonumentGreetings returns the greeting registry in declaration order.
// Declaration order is the tie-break when a message could match more than
// one entry.
func MonumentGreetings() []MonumentGreeting {
	return []MonumentGreeting{
		{
			MonumentID: "kedarnath",
			NameKey:    "kedarnath",
			Phrase:     "jai kedarnath",
			Response:   "Jai Kedarnath! 🙏 What a magnificent place you've asked about! Kedarnath is not just a temple, but a spiritual journey into the heart of the Himalayas. This sacred shrine dedicated to Lord Shiva holds incredible stories of devotion and divine presence. Would you like to hear about its fascinating mythology, rich history, or the breathtaking journey to reach it?",
		},
		{
			MonumentID: "badrinath",
			NameKey:    "badrinath",
			Phrase:     "jai badrinath",
			Response:   "Jai Badrinath! 🙏 Ah, you've mentioned one of the most revered shrines in Hinduism! Badrinath, the abode of Lord Vishnu in his Badrinarayan form, is a place where spirituality meets stunning natural beauty. This sacred site in the Garhwal Himalayas has attracted pilgrims for centuries with its powerful energy and profound legends. What aspect of Badrinath would you like to explore - its mythology, history, or the spiritual significance of this divine place?",
		},
		{
			MonumentID: "taj_mahal",
			NameKey:    "taj mahal",
			Phrase:     "namaste at the taj",
			Response:   "Namaste at the Taj! 🙏 What a magnificent monument you've asked about! The Taj Mahal isn't just a building - it's a timeless symbol of love that has captivated hearts for centuries. This stunning white marble mausoleum tells a story of eternal devotion that will leave you breathless. Would you like to hear about the incredible love story behind its creation, its architectural brilliance, or the fascinating history of this UNESCO World Heritage Site?",
		},
		{
			MonumentID: "red_fort",
			NameKey:    "red fort",
			Phrase:     "welcome to the red fort",
			Response:   "Welcome to the Red Fort! 🏰 What a magnificent piece of history you've asked about! The Red Fort isn't just a monument - it's a symbol of India's rich Mughal heritage and its journey to independence. This imposing red sandstone fortress has witnessed centuries of history, from royal ceremonies to the birth of a nation. Would you like to explore its fascinating history, architectural marvels, or its role in India's independence movement?",
		},
		{
			MonumentID: "hampi",
			NameKey:    "hampi",
			Phrase:     "pranam from hampi",
			Response:   "Pranam from Hampi! 🙏 What an incredible place you've asked about! Hampi isn't just a collection of ruins - it's a window into one of the greatest empires in Indian history. These ancient stone structures tell tales of a once-mighty kingdom that was renowned across the world for its wealth and power. Would you like to hear about the Vijayanagara Empire's glorious history, the fascinating stories behind these magnificent ruins, or the incredible architecture that still amazes visitors today?",
		},
	}
}
