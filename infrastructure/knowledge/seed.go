package knowledge

import domain "narad-backend/domain/knowledge"

// Built-in seed dataset. Order matters: it is the natural order used to
// break score ties in search and relatedness results.

func seedMonuments() []*domain.Monument {
	return []*domain.Monument{
		{
			ID:             "taj_mahal",
			Name:           "Taj Mahal",
			Location:       "Agra, Uttar Pradesh",
			Period:         "Mughal",
			BuiltYear:      1653,
			Significance:   "Symbol of eternal love, UNESCO World Heritage Site",
			Architecture:   "Indo-Islamic",
			StoryIDs:       []string{"shah_jahan_love", "taj_mahal_ghost"},
			MythIDs:        []string{"black_taj_legend", "architect_curse"},
			RelatedFigures: []string{"Shah Jahan", "Mumtaz Mahal", "Ustad Ahmad Lahori"},
		},
		{
			ID:             "red_fort",
			Name:           "Red Fort",
			Location:       "Delhi",
			Period:         "Mughal",
			BuiltYear:      1648,
			Significance:   "Seat of Mughal power, Independence Day venue",
			Architecture:   "Mughal",
			StoryIDs:       []string{"red_fort_mysteries"},
			MythIDs:        []string{"hidden_treasures", "secret_passages"},
			RelatedFigures: []string{"Shah Jahan", "Aurangzeb", "Bahadur Shah Zafar"},
		},
		{
			ID:             "hampi",
			Name:           "Hampi",
			Location:       "Karnataka",
			Period:         "Vijayanagara Empire",
			BuiltYear:      1336,
			Significance:   "Capital of Vijayanagara Empire, ruins of ancient city",
			Architecture:   "Vijayanagara",
			StoryIDs:       []string{"hanuman_birthplace"},
			MythIDs:        []string{"rama_vali_fight", "magical_boulders"},
			RelatedFigures: []string{"Krishnadevaraya", "Harihar Bukka", "Tenali Rama"},
		},
		{
			ID:             "kedarnath",
			Name:           "Kedarnath Temple",
			Location:       "Uttarakhand",
			Period:         "Ancient",
			BuiltYear:      800,
			Significance:   "One of the twelve Jyotirlingas of Lord Shiva, part of Char Dham",
			Architecture:   "North Indian Nagara style",
			StoryIDs:       []string{"kedarnath_pandavas", "shiva_bull_transformation"},
			MythIDs:        []string{"divine_protection"},
			RelatedFigures: []string{"Adi Shankaracharya", "Pandavas", "Lord Shiva"},
		},
		{
			ID:             "badrinath",
			Name:           "Badrinath Temple",
			Location:       "Uttarakhand",
			Period:         "Ancient",
			BuiltYear:      800,
			Significance:   "One of the four Char Dham pilgrimage sites, dedicated to Lord Vishnu",
			Architecture:   "North Indian Nagara style",
			StoryIDs:       []string{"badrinath_vishnu_tapasya", "badri_tree_legend"},
			MythIDs:        []string{"vishnu_meditation", "lakshmi_companionship"},
			RelatedFigures: []string{"Adi Shankaracharya", "Lord Vishnu", "Goddess Lakshmi"},
		},
	}
}

func seedStories() []*domain.Story {
	return []*domain.Story{
		{
			ID:         "shah_jahan_love",
			Title:      "The Eternal Love of Shah Jahan",
			Type:       "historical_romance",
			MonumentID: "taj_mahal",
			Content:    "The story of Shah Jahan's undying love for Mumtaz Mahal, and the monument he raised in her memory.",
			Themes:     []string{"love", "loss", "devotion", "architecture"},
		},
		{
			ID:         "hanuman_birthplace",
			Title:      "Hanuman's Birthplace in Hampi",
			Type:       "mythology",
			MonumentID: "hampi",
			Content:    "Legend says that Anjana gave birth to Hanuman in these hills overlooking the Tungabhadra.",
			Themes:     []string{"devotion", "strength", "mythology", "ramayana"},
		},
		{
			ID:         "red_fort_mysteries",
			Title:      "Hidden Secrets of Red Fort",
			Type:       "mystery",
			MonumentID: "red_fort",
			Content:    "The Red Fort holds many secrets within its walls, from sealed passages to vanished treasures.",
			Themes:     []string{"mystery", "history", "architecture", "secrets"},
		},
		{
			ID:         "bhangarh_fort_horror",
			Title:      "The Cursed Fort of Bhangarh",
			Type:       "horror",
			MonumentID: "bhangarh_fort",
			Content:    "Bhangarh Fort in Rajasthan is known as India's most haunted place. Legend tells of Princess Ratnavati's beauty that caught the eye of a tantric who practiced dark magic. When the princess refused his advances, he cursed the fort, dooming it to destruction. The entire population perished mysteriously, and it's said their spirits still roam the ruins.",
			Themes:     []string{"horror", "curse", "supernatural", "mystery", "folklore"},
			Versions: map[string]string{
				"folk_version":         "A tantric's curse led to the fort's destruction",
				"historical_version":   "The fort was abandoned after a battle with Mughal forces",
				"supernatural_version": "Paranormal activity and unexplained phenomena persist",
			},
		},
		{
			ID:         "taj_mahal_ghost",
			Title:      "The Weeping Ghost of Taj Mahal",
			Type:       "horror",
			MonumentID: "taj_mahal",
			Content:    "Late at night, guards at the Taj Mahal report hearing the sound of a woman weeping. Some believe it's the spirit of Mumtaz Mahal, eternally mourning her separation from the world.",
			Themes:     []string{"ghost", "love", "tragedy", "supernatural"},
			Versions: map[string]string{
				"folk_version":       "Mumtaz Mahal's spirit haunts the monument",
				"historical_version": "The monument was built as a mausoleum",
				"mystery_version":    "Unexplained phenomena reported by guards",
			},
		},
		{
			ID:         "delhi_ridge_forest_horror",
			Title:      "Spirits of Delhi Ridge",
			Type:       "horror",
			MonumentID: "delhi_ridge",
			Content:    "The Delhi Ridge forest has a dark history from the 1857 revolt when many were hanged from its trees. Locals avoid the forest after sunset, claiming to see hanging figures that disappear when approached.",
			Themes:     []string{"haunted_forest", "historical_trauma", "supernatural"},
			Versions: map[string]string{
				"folk_version":         "Spirits of freedom fighters haunt the ridge",
				"historical_version":   "Site of executions during the 1857 revolt",
				"supernatural_version": "Paranormal hotspot with documented incidents",
			},
		},
		{
			ID:         "kedarnath_pandavas",
			Title:      "The Pandavas and Lord Shiva",
			Type:       "mythology",
			MonumentID: "kedarnath",
			Content:    "The story of how the Pandavas sought Lord Shiva's blessings after the great war, following him into the Himalayas.",
			Themes:     []string{"mahabharata", "devotion", "pilgrimage", "atonement"},
		},
		{
			ID:         "shiva_bull_transformation",
			Title:      "Shiva's Bull Transformation",
			Type:       "mythology",
			MonumentID: "kedarnath",
			Content:    "The tale of how Lord Shiva transformed into a bull to test the Pandavas, leaving his hump behind at Kedarnath.",
			Themes:     []string{"shiva", "transformation", "devotion"},
		},
		{
			ID:         "badrinath_vishnu_tapasya",
			Title:      "Lord Vishnu's Meditation",
			Type:       "mythology",
			MonumentID: "badrinath",
			Content:    "The story of Lord Vishnu meditating in the form of Badrinarayan while Lakshmi sheltered him as a badri tree.",
			Themes:     []string{"vishnu", "meditation", "tapasya"},
		},
		{
			ID:         "badri_tree_legend",
			Title:      "The Badri Tree Legend",
			Type:       "mythology",
			MonumentID: "badrinath",
			Content:    "The tale of how the place got its name from the badri (jujube) trees that once covered the valley.",
			Themes:     []string{"etymology", "divine_provision"},
		},
	}
}
