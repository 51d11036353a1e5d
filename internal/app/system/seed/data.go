package seed

import (
	"time"

	"github.com/dalemusser/ukrconnect/internal/domain/models"
)

// Translations returns the starter phrasebook. Difficulty mirrors the
// subcategory (basic, critical, intermediate).
func Translations() []models.Translation {
	return []models.Translation{
		{Ukrainian: "Привіт", English: "Hello", Pronunciation: "Pry-veet", Category: "greetings", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Добрий день", English: "Good day", Pronunciation: "Do-bryy den", Category: "greetings", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "До побачення", English: "Goodbye", Pronunciation: "Do po-ba-chen-nya", Category: "greetings", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Дякую", English: "Thank you", Pronunciation: "Dya-ku-yu", Category: "greetings", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Будь ласка", English: "Please", Pronunciation: "Bud las-ka", Category: "greetings", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Вибачте", English: "Excuse me", Pronunciation: "Vy-bach-te", Category: "greetings", Subcategory: "basic", DifficultyLevel: "basic"},

		{Ukrainian: "Допоможіть!", English: "Help!", Pronunciation: "Do-po-mo-zheet", Category: "emergency", Subcategory: "critical", DifficultyLevel: "critical"},
		{Ukrainian: "Викличте поліцію", English: "Call the police", Pronunciation: "Vy-kly-chte po-lee-tsi-yu", Category: "emergency", Subcategory: "critical", DifficultyLevel: "critical"},
		{Ukrainian: "Викличте швидку", English: "Call an ambulance", Pronunciation: "Vy-kly-chte shvyd-ku", Category: "emergency", Subcategory: "critical", DifficultyLevel: "critical"},
		{Ukrainian: "Мені потрібна допомога", English: "I need help", Pronunciation: "Me-nee pot-ree-bna do-po-mo-ha", Category: "emergency", Subcategory: "critical", DifficultyLevel: "critical"},
		{Ukrainian: "Де найближча лікарня?", English: "Where is the nearest hospital?", Pronunciation: "De nay-blyzh-cha lee-kar-nya", Category: "emergency", Subcategory: "critical", DifficultyLevel: "critical"},

		{Ukrainian: "Мені погано", English: "I feel sick", Pronunciation: "Me-nee po-ha-no", Category: "healthcare", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "У мене болить голова", English: "I have a headache", Pronunciation: "U me-ne bo-lyt ho-lo-va", Category: "healthcare", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Мені потрібен лікар", English: "I need a doctor", Pronunciation: "Me-nee pot-ree-ben lee-kar", Category: "healthcare", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Де аптека?", English: "Where is the pharmacy?", Pronunciation: "De ap-te-ka", Category: "healthcare", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "У мене алергія", English: "I have an allergy", Pronunciation: "U me-ne a-ler-hee-ya", Category: "healthcare", Subcategory: "intermediate", DifficultyLevel: "intermediate"},

		{Ukrainian: "Мені потрібна допомога з документами", English: "I need help with documents", Pronunciation: "Me-nee pot-ree-bna do-po-mo-ha z do-ku-men-ta-my", Category: "government", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Де міграційна служба?", English: "Where is immigration services?", Pronunciation: "De mee-hra-tsee-yna sluzh-ba", Category: "government", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Мені потрібен перекладач", English: "I need a translator", Pronunciation: "Me-nee pot-ree-ben pe-re-kla-dach", Category: "government", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Як отримати соціальну допомогу?", English: "How to get social assistance?", Pronunciation: "Yak o-try-ma-ty so-tsee-al-nu do-po-mo-hu", Category: "government", Subcategory: "intermediate", DifficultyLevel: "intermediate"},

		{Ukrainian: "Я шукаю роботу", English: "I'm looking for work", Pronunciation: "Ya shu-ka-yu ro-bo-tu", Category: "employment", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Де центр зайнятості?", English: "Where is the employment center?", Pronunciation: "De tsentr zay-nya-tos-tee", Category: "employment", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Мені потрібна довідка про роботу", English: "I need a work certificate", Pronunciation: "Me-nee pot-ree-bna do-veed-ka pro ro-bo-tu", Category: "employment", Subcategory: "intermediate", DifficultyLevel: "intermediate"},

		{Ukrainian: "Я шукаю житло", English: "I'm looking for housing", Pronunciation: "Ya shu-ka-yu zhyt-lo", Category: "housing", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Скільки коштує оренда?", English: "How much is the rent?", Pronunciation: "Skeel-ky kosh-tu-ye o-ren-da", Category: "housing", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Мені потрібна допомога з житлом", English: "I need help with housing", Pronunciation: "Me-nee pot-ree-bna do-po-mo-ha z zhyt-lom", Category: "housing", Subcategory: "basic", DifficultyLevel: "basic"},

		{Ukrainian: "Де школа для моєї дитини?", English: "Where is school for my child?", Pronunciation: "De shko-la dlya mo-ye-yi dy-ty-ny", Category: "education", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Мені потрібні курси англійської", English: "I need English courses", Pronunciation: "Me-nee pot-ree-bnee kur-sy an-hlee-ys-ko-yi", Category: "education", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Як записати дитину до школи?", English: "How to enroll child in school?", Pronunciation: "Yak za-py-sa-ty dy-ty-nu do shko-ly", Category: "education", Subcategory: "intermediate", DifficultyLevel: "intermediate"},

		{Ukrainian: "Де автобусна зупинка?", English: "Where is the bus stop?", Pronunciation: "De av-to-bus-na zu-pyn-ka", Category: "transportation", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Скільки коштує проїзд?", English: "How much does it cost to ride?", Pronunciation: "Skeel-ky kosh-tu-ye pro-yizd", Category: "transportation", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Як дістатися до центру?", English: "How to get to downtown?", Pronunciation: "Yak dees-ta-ty-sya do tsen-tru", Category: "transportation", Subcategory: "basic", DifficultyLevel: "basic"},

		{Ukrainian: "Скільки це коштує?", English: "How much does this cost?", Pronunciation: "Skeel-ky tse kosh-tu-ye", Category: "shopping", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Де супермаркет?", English: "Where is the supermarket?", Pronunciation: "De su-per-mar-ket", Category: "shopping", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Я хочу купити...", English: "I want to buy...", Pronunciation: "Ya kho-chu ku-py-ty", Category: "shopping", Subcategory: "basic", DifficultyLevel: "basic"},

		{Ukrainian: "Як справи?", English: "How are things?", Pronunciation: "Yak spra-vy", Category: "conversation", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Я не розумію", English: "I don't understand", Pronunciation: "Ya ne ro-zu-mee-yu", Category: "conversation", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Повторіть, будь ласка", English: "Please repeat", Pronunciation: "Pov-to-reet bud las-ka", Category: "conversation", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Говоріть повільніше", English: "Speak slower", Pronunciation: "Ho-vo-reet po-veel-nee-she", Category: "conversation", Subcategory: "basic", DifficultyLevel: "basic"},
		{Ukrainian: "Я вивчаю англійську", English: "I'm learning English", Pronunciation: "Ya vy-vcha-yu an-hlee-ys-ku", Category: "conversation", Subcategory: "basic", DifficultyLevel: "basic"},
	}
}

// Lessons returns the introductory lessons in curriculum order.
func Lessons() []models.Lesson {
	return []models.Lesson{
		{
			Title:         "Ukrainian Alphabet",
			Description:   "Learn the Ukrainian alphabet and basic pronunciation",
			ContentFormat: models.ContentFormatHTML,
			Level:         models.DifficultyBeginner,
			OrderIndex:    1,
			Content: `<h3>The Ukrainian Alphabet</h3>
<p>The Ukrainian alphabet has 33 letters. Here are the basics:</p>
<div class="alphabet-grid">
    <div class="letter-card"><strong>А а</strong> - sounds like 'a' in 'father'</div>
    <div class="letter-card"><strong>Б б</strong> - sounds like 'b' in 'boy'</div>
    <div class="letter-card"><strong>В в</strong> - sounds like 'v' in 'very'</div>
    <div class="letter-card"><strong>Г г</strong> - sounds like 'h' in 'house'</div>
    <div class="letter-card"><strong>Д д</strong> - sounds like 'd' in 'dog'</div>
    <div class="letter-card"><strong>Е е</strong> - sounds like 'e' in 'bet'</div>
    <div class="letter-card"><strong>Є є</strong> - sounds like 'ye' in 'yes'</div>
    <div class="letter-card"><strong>Ж ж</strong> - sounds like 's' in 'measure'</div>
    <div class="letter-card"><strong>З з</strong> - sounds like 'z' in 'zoo'</div>
    <div class="letter-card"><strong>И и</strong> - sounds like 'i' in 'bit'</div>
    <div class="letter-card"><strong>І і</strong> - sounds like 'ee' in 'see'</div>
    <div class="letter-card"><strong>Ї ї</strong> - sounds like 'yee'</div>
    <div class="letter-card"><strong>Й й</strong> - sounds like 'y' in 'boy'</div>
    <div class="letter-card"><strong>К к</strong> - sounds like 'k' in 'key'</div>
    <div class="letter-card"><strong>Л л</strong> - sounds like 'l' in 'love'</div>
    <div class="letter-card"><strong>М м</strong> - sounds like 'm' in 'mother'</div>
    <div class="letter-card"><strong>Н н</strong> - sounds like 'n' in 'no'</div>
    <div class="letter-card"><strong>О о</strong> - sounds like 'o' in 'not'</div>
    <div class="letter-card"><strong>П п</strong> - sounds like 'p' in 'pen'</div>
    <div class="letter-card"><strong>Р р</strong> - rolled 'r'</div>
    <div class="letter-card"><strong>С с</strong> - sounds like 's' in 'sun'</div>
    <div class="letter-card"><strong>Т т</strong> - sounds like 't' in 'top'</div>
    <div class="letter-card"><strong>У у</strong> - sounds like 'oo' in 'moon'</div>
    <div class="letter-card"><strong>Ф ф</strong> - sounds like 'f' in 'fun'</div>
    <div class="letter-card"><strong>Х х</strong> - sounds like 'ch' in Scottish 'loch'</div>
    <div class="letter-card"><strong>Ц ц</strong> - sounds like 'ts' in 'cats'</div>
    <div class="letter-card"><strong>Ч ч</strong> - sounds like 'ch' in 'chair'</div>
    <div class="letter-card"><strong>Ш ш</strong> - sounds like 'sh' in 'shop'</div>
    <div class="letter-card"><strong>Щ щ</strong> - sounds like 'shch'</div>
    <div class="letter-card"><strong>Ь ь</strong> - soft sign (no sound, softens preceding consonant)</div>
    <div class="letter-card"><strong>Ю ю</strong> - sounds like 'yu' in 'yule'</div>
    <div class="letter-card"><strong>Я я</strong> - sounds like 'ya' in 'yard'</div>
</div>`,
		},
		{
			Title:         "Basic Greetings",
			Description:   "Essential greetings and polite expressions",
			ContentFormat: models.ContentFormatHTML,
			Level:         models.DifficultyBeginner,
			OrderIndex:    2,
			Content: `<h3>Essential Greetings</h3>
<div class="phrase-list">
    <div class="phrase-item">
        <strong>Привіт</strong> (Pry-veet) - Hello (informal)
    </div>
    <div class="phrase-item">
        <strong>Добрий день</strong> (Do-bryy den) - Good day (formal)
    </div>
    <div class="phrase-item">
        <strong>Добрий ранок</strong> (Do-bryy ra-nok) - Good morning
    </div>
    <div class="phrase-item">
        <strong>Добрий вечір</strong> (Do-bryy ve-cheer) - Good evening
    </div>
    <div class="phrase-item">
        <strong>До побачення</strong> (Do po-ba-chen-nya) - Goodbye
    </div>
    <div class="phrase-item">
        <strong>Дякую</strong> (Dya-ku-yu) - Thank you
    </div>
    <div class="phrase-item">
        <strong>Будь ласка</strong> (Bud las-ka) - Please
    </div>
    <div class="phrase-item">
        <strong>Вибачте</strong> (Vy-bach-te) - Excuse me / Sorry
    </div>
</div>`,
		},
		{
			Title:         "Numbers and Counting",
			Description:   "Count from one to ten and ask how much something costs",
			ContentFormat: models.ContentFormatMarkdown,
			Level:         models.DifficultyBeginner,
			OrderIndex:    3,
			Content: `### Numbers 1-10

| Number | Ukrainian | Pronunciation |
|---|---|---|
| 1 | один | o-DYN |
| 2 | два | dva |
| 3 | три | try |
| 4 | чотири | cho-TY-ry |
| 5 | п'ять | pyat |
| 6 | шість | sheest |
| 7 | сім | seem |
| 8 | вісім | VEE-seem |
| 9 | дев'ять | DE-vyat |
| 10 | десять | DE-syat |

### At the store

- **Скільки це коштує?** (Skeel-ky tse kosh-tu-ye) - How much does this cost?
- **Це коштує п'ять доларів.** - This costs five dollars.

Practice by counting the items in your shopping basket out loud.`,
		},
	}
}

// Community returns the starter directory of Winnipeg organizations.
func Community() []models.CommunityInfo {
	return []models.CommunityInfo{
		{
			Title:       "Ukrainian Cultural Centre of Winnipeg",
			Content:     "The Ukrainian Cultural Centre serves as a hub for Ukrainian-Canadian community activities in Winnipeg.",
			Category:    "cultural_centers",
			ContactInfo: "Contact information to be added",
			Address:     "Winnipeg, MB",
		},
		{
			Title:       "Ukrainian Orthodox Cathedral",
			Content:     "Historic Ukrainian Orthodox cathedral serving the community since early settlement.",
			Category:    "religious",
			ContactInfo: "Contact information to be added",
			Address:     "Winnipeg, MB",
		},
		{
			Title:       "Ukrainian Canadian Congress - Manitoba",
			Content:     "Provincial branch of the Ukrainian Canadian Congress representing Ukrainian-Canadians in Manitoba.",
			Category:    "organizations",
			ContactInfo: "Contact information to be added",
			Address:     "Winnipeg, MB",
		},
	}
}

// Heritage returns the Manitoba Ukrainian heritage articles. Their
// categories are archival tags and go beyond the form categories.
func Heritage() []models.HeritageInfo {
	return []models.HeritageInfo{
		{
			Title:            "Ukrainian Settlement in Manitoba",
			Content:          "The first wave of Ukrainian immigration to Manitoba began in the 1890s, with settlers establishing farming communities throughout the province. Major settlement areas included the Interlake region, Dauphin area, and communities near Winnipeg.",
			Category:         "history",
			HistoricalPeriod: "1890s-1920s",
		},
		{
			Title:            "Stuartburn Settlement",
			Content:          "One of the earliest Ukrainian settlements in Manitoba, established in 1896 in southeastern Manitoba. Known for its preserved pioneer village and cultural heritage.",
			Category:         "settlements",
			HistoricalPeriod: "1896-present",
		},
		{
			Title:            "Dauphin Ukrainian Settlement",
			Content:          "Major Ukrainian farming community established in western Manitoba, known for its annual National Ukrainian Festival and strong cultural preservation.",
			Category:         "settlements",
			HistoricalPeriod: "1896-present",
		},
		{
			Title:            "Interlake Ukrainian Communities",
			Content:          "Numerous Ukrainian settlements throughout the Interlake region including Komarno, Fraserwood, and Poplarfield, known for maintaining traditional farming and cultural practices.",
			Category:         "settlements",
			HistoricalPeriod: "1890s-present",
		},
		{
			Title:            "North End Winnipeg Ukrainian District",
			Content:          "Historic urban Ukrainian community centered around Selkirk Avenue, featuring Ukrainian businesses, churches, and cultural institutions that served as the heart of Ukrainian life in Winnipeg.",
			Category:         "urban_heritage",
			HistoricalPeriod: "1900s-1970s",
		},
		{
			Title:            "Rev. Nestor Dmytriw",
			Content:          "First Ukrainian Orthodox priest in Canada, arrived in Manitoba in 1897. Instrumental in establishing Ukrainian Orthodox churches and preserving Ukrainian religious traditions.",
			Category:         "people",
			HistoricalPeriod: "1897-1925",
		},
		{
			Title:            "Michael Hrushevsky",
			Content:          "Renowned Ukrainian historian who spent time in Manitoba during his North American period, contributing to Ukrainian scholarly and cultural life in the province.",
			Category:         "people",
			HistoricalPeriod: "1914-1924",
		},
		{
			Title:            "Wasyl Swystun",
			Content:          "Pioneer farmer and community leader who established one of the first Ukrainian settlements in Manitoba, becoming a model for successful agricultural adaptation.",
			Category:         "people",
			HistoricalPeriod: "1890s-1920s",
		},
		{
			Title:            "Dr. Mary Beck",
			Content:          "Ukrainian-Canadian physician who served rural Ukrainian communities in Manitoba, breaking barriers as one of the first female doctors of Ukrainian heritage in the province.",
			Category:         "people",
			HistoricalPeriod: "1920s-1960s",
		},
		{
			Title:            "Ramon Hnatyshyn",
			Content:          "Governor General of Canada (1990-1995) of Ukrainian descent, born in Saskatoon but with strong Manitoba Ukrainian community connections.",
			Category:         "people",
			HistoricalPeriod: "1934-2002",
		},
		{
			Title:            "Paul Yuzyk",
			Content:          "Ukrainian-Canadian historian and Senator, known as the 'Father of Multiculturalism' in Canada, with significant contributions to Manitoba's Ukrainian historical documentation.",
			Category:         "people",
			HistoricalPeriod: "1913-1986",
		},
		{
			Title:            "St. Nicholas Ukrainian Catholic Church",
			Content:          "Historic church in Winnipeg's North End, featuring traditional Ukrainian architectural elements and serving as a community center for generations of Ukrainian families.",
			Category:         "architecture",
			HistoricalPeriod: "1905-present",
		},
		{
			Title:            "Holy Trinity Ukrainian Orthodox Cathedral",
			Content:          "Magnificent cathedral in Winnipeg featuring Byzantine-style architecture with distinctive onion domes, serving as the mother church for Ukrainian Orthodox in Manitoba.",
			Category:         "architecture",
			HistoricalPeriod: "1952-present",
		},
		{
			Title:            "Ukrainian Labour Temple",
			Content:          "Historic building on Pritchard Avenue that served as a cultural and political center for Ukrainian workers, featuring murals and traditional architectural details.",
			Category:         "architecture",
			HistoricalPeriod: "1918-present",
		},
		{
			Title:            "Immaculate Heart of Mary Ukrainian Catholic Church",
			Content:          "Beautiful Ukrainian Catholic church in Winnipeg featuring traditional iconostasis and Ukrainian liturgical art, important center for Ukrainian Catholic community.",
			Category:         "architecture",
			HistoricalPeriod: "1960s-present",
		},
		{
			Title:            "St. Andrew's Ukrainian Orthodox Church (Gimli)",
			Content:          "Historic wooden church built by Ukrainian settlers, representing traditional Ukrainian church architecture adapted to Manitoba's climate and materials.",
			Category:         "architecture",
			HistoricalPeriod: "1899-present",
		},
		{
			Title:            "Ukrainian Cultural and Educational Centre",
			Content:          "Modern complex in Winnipeg housing the Ukrainian Museum of Canada, libraries, and cultural facilities, representing contemporary Ukrainian-Canadian architectural achievement.",
			Category:         "architecture",
			HistoricalPeriod: "1970s-present",
		},
		{
			Title:            "Taras Shevchenko Monument",
			Content:          "Memorial monument in Winnipeg's Kildonan Park honoring Ukraine's national poet, designed by Ukrainian-Canadian sculptor Leo Mol.",
			Category:         "monuments",
			HistoricalPeriod: "1961-present",
		},
		{
			Title:            "Ukrainian Pioneer Home (Dauphin)",
			Content:          "Preserved pioneer home showcasing traditional Ukrainian settler architecture and lifestyle, now serving as a museum.",
			Category:         "architecture",
			HistoricalPeriod: "1896-present",
		},
		{
			Title:            "Ukrainian Museum of Canada (Manitoba Branch)",
			Content:          "Premier institution preserving and showcasing Ukrainian heritage in Manitoba, featuring artifacts, traditional clothing, and historical exhibits.",
			Category:         "institutions",
			HistoricalPeriod: "1944-present",
		},
		{
			Title:            "National Ukrainian Festival (Dauphin)",
			Content:          "Canada's largest Ukrainian cultural festival, held annually in Dauphin since 1965, celebrating Ukrainian music, dance, food, and traditions.",
			Category:         "festivals",
			HistoricalPeriod: "1965-present",
		},
		{
			Title:            "Ukrainian Cultural Centre (Winnipeg)",
			Content:          "Major cultural facility hosting Ukrainian language classes, cultural events, and serving as headquarters for numerous Ukrainian organizations.",
			Category:         "institutions",
			HistoricalPeriod: "1950s-present",
		},
		{
			Title:            "Vesna Ukrainian Dancers",
			Content:          "Renowned Ukrainian dance troupe from Dauphin, representing Manitoba at national and international events, preserving traditional Ukrainian dance forms.",
			Category:         "cultural_groups",
			HistoricalPeriod: "1960s-present",
		},
		{
			Title:            "Ukrainian Male Chorus of Winnipeg",
			Content:          "Historic men's choir preserving Ukrainian choral traditions and performing at cultural events throughout Manitoba and beyond.",
			Category:         "cultural_groups",
			HistoricalPeriod: "1930s-present",
		},
		{
			Title:            "Ukrainian Bilingual Education Program",
			Content:          "Pioneering bilingual education program in Manitoba public schools, allowing students to learn in both English and Ukrainian from kindergarten through grade 12.",
			Category:         "education",
			HistoricalPeriod: "1979-present",
		},
		{
			Title:            "St. Andrew's College",
			Content:          "Ukrainian Orthodox theological college affiliated with the University of Manitoba, training Ukrainian Orthodox clergy and preserving theological traditions.",
			Category:         "education",
			HistoricalPeriod: "1946-present",
		},
		{
			Title:            "Ukrainian Language and Culture School",
			Content:          "Saturday schools throughout Manitoba teaching Ukrainian language, history, and culture to second and third-generation Ukrainian-Canadians.",
			Category:         "education",
			HistoricalPeriod: "1920s-present",
		},
		{
			Title:            "First Ukrainian Mass Immigration (1891-1914)",
			Content:          "Period of major Ukrainian settlement in Manitoba, with over 170,000 Ukrainians arriving in Canada, many settling in Manitoba's agricultural areas.",
			Category:         "events",
			HistoricalPeriod: "1891-1914",
		},
		{
			Title:            "Ukrainian Internment in Manitoba (1914-1920)",
			Content:          "Difficult period when Ukrainian-Canadians were classified as 'enemy aliens' during WWI, with internment camps established in Manitoba including at Kapuskasing.",
			Category:         "events",
			HistoricalPeriod: "1914-1920",
		},
		{
			Title:            "Ukrainian Orthodox Church Split (1918)",
			Content:          "Significant religious and cultural event when Ukrainian Orthodox churches in Manitoba gained independence from Russian Orthodox authority.",
			Category:         "events",
			HistoricalPeriod: "1918",
		},
		{
			Title:            "Founding of Ukrainian Self-Reliance League (1927)",
			Content:          "Establishment of major Ukrainian-Canadian organization in Winnipeg promoting Ukrainian culture, education, and community development.",
			Category:         "events",
			HistoricalPeriod: "1927",
		},
		{
			Title:            "Post-WWII Ukrainian Refugees (1945-1955)",
			Content:          "Second major wave of Ukrainian immigration to Manitoba, including displaced persons and political refugees from Soviet-controlled Ukraine.",
			Category:         "events",
			HistoricalPeriod: "1945-1955",
		},
		{
			Title:            "Ukraine's Independence Recognition (1991)",
			Content:          "Celebration throughout Manitoba's Ukrainian communities when Canada became the first Western nation to recognize Ukraine's independence.",
			Category:         "events",
			HistoricalPeriod: "1991",
		},
		{
			Title:            "Ukrainian Pysanka Tradition",
			Content:          "Ancient Ukrainian art of decorated Easter eggs, maintained and taught in Manitoba through cultural centers and family traditions.",
			Category:         "arts",
			HistoricalPeriod: "ongoing",
		},
		{
			Title:            "Ukrainian Embroidery (Vyshyvanka)",
			Content:          "Traditional Ukrainian embroidery art preserved and practiced in Manitoba, with distinct regional patterns brought by different settler groups.",
			Category:         "arts",
			HistoricalPeriod: "ongoing",
		},
		{
			Title:            "Ukrainian Woodcarving Tradition",
			Content:          "Traditional woodcarving skills brought by Ukrainian settlers, evident in church decorations and household items throughout Manitoba.",
			Category:         "arts",
			HistoricalPeriod: "1890s-present",
		},
		{
			Title:            "Ukrainian Folk Music in Manitoba",
			Content:          "Rich tradition of Ukrainian folk music including church choral music, folk songs, and instrumental music preserved through community groups.",
			Category:         "arts",
			HistoricalPeriod: "ongoing",
		},
		{
			Title:            "Ukrainian Farming Techniques",
			Content:          "Traditional Ukrainian farming methods adapted to Manitoba's prairie conditions, including crop rotation and animal husbandry practices.",
			Category:         "agriculture",
			HistoricalPeriod: "1890s-present",
		},
		{
			Title:            "Ukrainian Cuisine in Manitoba",
			Content:          "Traditional Ukrainian foods adapted to Canadian ingredients, including perogies, cabbage rolls, and Ukrainian breads, now part of Manitoba's culinary heritage.",
			Category:         "cuisine",
			HistoricalPeriod: "1890s-present",
		},
		{
			Title:            "Ukrainian Canadian Congress (Manitoba)",
			Content:          "Provincial branch of national organization coordinating Ukrainian-Canadian activities and advocating for community interests.",
			Category:         "organizations",
			HistoricalPeriod: "1940s-present",
		},
		{
			Title:            "Ukrainian Professional and Business Federation",
			Content:          "Organization supporting Ukrainian-Canadian professionals and businesses in Manitoba, promoting economic development and networking.",
			Category:         "organizations",
			HistoricalPeriod: "1970s-present",
		},
		{
			Title:            "Contemporary Ukrainian Immigration",
			Content:          "Recent waves of Ukrainian immigration to Manitoba, including political refugees and economic immigrants maintaining connections with homeland.",
			Category:         "contemporary",
			HistoricalPeriod: "1991-present",
		},
		{
			Title:            "Ukrainian Orthodox Church of Canada",
			Content:          "Major Ukrainian Orthodox denomination in Manitoba, established in 1918 as an autonomous church serving Ukrainian Orthodox communities.",
			Category:         "religious",
			HistoricalPeriod: "1918-present",
		},
		{
			Title:            "Ukrainian Catholic Archeparchy of Winnipeg",
			Content:          "Ecclesiastical territory of the Ukrainian Catholic Church covering Manitoba and Saskatchewan, established in 1956.",
			Category:         "religious",
			HistoricalPeriod: "1956-present",
		},
		{
			Title:            "Ukrainian National Association Sports",
			Content:          "Traditional Ukrainian sports and athletic clubs that promoted physical fitness and cultural identity among Ukrainian-Canadians in Manitoba.",
			Category:         "sports",
			HistoricalPeriod: "1920s-present",
		},
		{
			Title:            "Ukrainian Youth Organizations",
			Content:          "Various youth groups including Plast Ukrainian Scouting Organization and Ukrainian Youth Association promoting Ukrainian culture among young people.",
			Category:         "youth",
			HistoricalPeriod: "1920s-present",
		},
	}
}

// Resources returns the starter settlement services.
func Resources() []models.Resource {
	return []models.Resource{
		{
			Title:       "Manitoba Immigration Services",
			Description: "Government services for new immigrants including settlement support and language training.",
			Category:    "government",
			ContactInfo: "Contact information to be added",
			Address:     "Winnipeg, MB",
			Hours:       "Monday-Friday 8:30 AM - 4:30 PM",
		},
		{
			Title:       "Winnipeg Public Library",
			Description: "Free library services including English language learning resources and computer access.",
			Category:    "education",
			ContactInfo: "Multiple locations throughout Winnipeg",
			Address:     "Various locations",
			Hours:       "Varies by location",
		},
		{
			Title:       "Health Sciences Centre",
			Description: "Major hospital providing comprehensive healthcare services with interpretation services available.",
			Category:    "healthcare",
			ContactInfo: "Emergency services available 24/7",
			Address:     "Winnipeg, MB",
			Hours:       "24/7 Emergency, varies for other services",
		},
	}
}

// Events returns the 2025 community calendar. Times are local wall-clock
// times stored as UTC.
func Events() []models.Event {
	return []models.Event{
		{
			Title:       "National Ukrainian Festival (Dauphin)",
			Description: "Canada's largest Ukrainian cultural festival featuring traditional music, dance, food, crafts, and cultural exhibits. Held annually in Dauphin since 1965.",
			Date:        time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
			Location:    "Dauphin, Manitoba",
			Organizer:   "Dauphin Ukrainian Festival Association",
			ContactInfo: "Ukrainian Festival Grounds, Dauphin",
			Category:    "cultural",
		},
		{
			Title:       "Ukrainian Easter Celebration",
			Description: "Traditional Ukrainian Easter celebrations with pysanka workshops, traditional foods, and religious ceremonies at Ukrainian churches throughout Manitoba.",
			Date:        time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC),
			Location:    "Various Ukrainian Churches, Manitoba",
			Organizer:   "Ukrainian Orthodox and Catholic Churches",
			ContactInfo: "Local Ukrainian Churches",
			Category:    "religious",
		},
		{
			Title:       "Vesna Festival",
			Description: "Spring festival celebrating Ukrainian culture with traditional performances by the famous Vesna Ukrainian Dancers and community groups.",
			Date:        time.Date(2025, 5, 15, 19, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Cultural Centre, Winnipeg",
			Organizer:   "Ukrainian Cultural Centre",
			ContactInfo: "184 Alexander Avenue East, Winnipeg",
			Category:    "cultural",
		},
		{
			Title:       "Ukrainian Independence Day Celebration",
			Description: "Commemoration of Ukraine's independence with cultural performances, traditional foods, and community gathering.",
			Date:        time.Date(2025, 8, 24, 14, 0, 0, 0, time.UTC),
			Location:    "Kildonan Park, Winnipeg",
			Organizer:   "Ukrainian Canadian Congress - Manitoba",
			ContactInfo: "Ukrainian Canadian Congress Manitoba",
			Category:    "patriotic",
		},
		{
			Title:       "Shevchenko Poetry Evening",
			Description: "Annual celebration of Ukraine's national poet Taras Shevchenko with poetry readings, musical performances, and cultural presentations.",
			Date:        time.Date(2025, 3, 9, 19, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Labour Temple, Winnipeg",
			Organizer:   "Taras Shevchenko Foundation",
			ContactInfo: "Ukrainian Cultural Organizations",
			Category:    "cultural",
		},
		{
			Title:       "Ukrainian Language School Registration",
			Description: "Annual registration for Ukrainian Saturday schools throughout Manitoba, offering language and cultural education for children and adults.",
			Date:        time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Cultural Centre, Winnipeg",
			Organizer:   "Ukrainian Language Schools Association",
			ContactInfo: "Ukrainian Cultural Centre",
			Category:    "education",
		},
		{
			Title:       "Ukrainian Museum Heritage Day",
			Description: "Special exhibition and educational programs showcasing Ukrainian heritage in Manitoba with guided tours and artifact displays.",
			Date:        time.Date(2025, 5, 18, 10, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Museum of Canada, Winnipeg",
			Organizer:   "Ukrainian Museum of Canada",
			ContactInfo: "Ukrainian Cultural Centre",
			Category:    "education",
		},
		{
			Title:       "Pysanka Workshop Series",
			Description: "Traditional Ukrainian Easter egg decorating workshops for all skill levels, teaching ancient techniques and patterns.",
			Date:        time.Date(2025, 3, 15, 13, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Cultural Centre, Winnipeg",
			Organizer:   "Ukrainian Women's Association",
			ContactInfo: "Ukrainian Cultural Centre",
			Category:    "arts",
		},
		{
			Title:       "Holodomor Memorial Service",
			Description: "Annual memorial service commemorating the victims of the 1932-33 Ukrainian famine-genocide with candlelight vigil and remembrance ceremony.",
			Date:        time.Date(2025, 11, 22, 18, 0, 0, 0, time.UTC),
			Location:    "Holy Trinity Ukrainian Orthodox Cathedral, Winnipeg",
			Organizer:   "Ukrainian Orthodox and Catholic Churches",
			ContactInfo: "Ukrainian Churches in Manitoba",
			Category:    "memorial",
		},
		{
			Title:       "Ukrainian Christmas Carol Service",
			Description: "Traditional Ukrainian Christmas celebration with carols (kolyadky), traditional foods, and community fellowship according to the Julian calendar.",
			Date:        time.Date(2025, 1, 7, 18, 0, 0, 0, time.UTC),
			Location:    "Various Ukrainian Churches, Manitoba",
			Organizer:   "Ukrainian Orthodox Churches",
			ContactInfo: "Local Ukrainian Orthodox Parishes",
			Category:    "religious",
		},
		{
			Title:       "St. Nicholas Day Celebration",
			Description: "Traditional Ukrainian celebration for children with St. Nicholas visits, gifts, and cultural activities.",
			Date:        time.Date(2025, 12, 6, 15, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Cultural Centre, Winnipeg",
			Organizer:   "Ukrainian Youth Organizations",
			ContactInfo: "Ukrainian Cultural Centre",
			Category:    "family",
		},
		{
			Title:       "Ukrainian Settlement Days (Stuartburn)",
			Description: "Annual celebration of early Ukrainian settlement in Manitoba with pioneer demonstrations, traditional crafts, and historical reenactments.",
			Date:        time.Date(2025, 7, 12, 10, 0, 0, 0, time.UTC),
			Location:    "Stuartburn, Manitoba",
			Organizer:   "Stuartburn Historical Society",
			ContactInfo: "Stuartburn Community Centre",
			Category:    "historical",
		},
		{
			Title:       "Ukrainian Pioneer Heritage Weekend",
			Description: "Two-day event showcasing traditional Ukrainian farming techniques, pioneer lifestyle, and heritage preservation activities.",
			Date:        time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Pioneer Village, Various Locations",
			Organizer:   "Manitoba Ukrainian Heritage Organizations",
			ContactInfo: "Heritage Organizations",
			Category:    "historical",
		},
		{
			Title:       "Ukrainian Male Chorus Concert",
			Description: "Traditional Ukrainian choral music performance featuring classical and folk songs by the historic Ukrainian Male Chorus of Winnipeg.",
			Date:        time.Date(2025, 10, 15, 19, 30, 0, 0, time.UTC),
			Location:    "Centennial Concert Hall, Winnipeg",
			Organizer:   "Ukrainian Male Chorus of Winnipeg",
			ContactInfo: "Ukrainian Cultural Centre",
			Category:    "music",
		},
		{
			Title:       "Ukrainian Dance Festival",
			Description: "Showcase of traditional Ukrainian dance featuring local dance groups and the renowned Vesna Ukrainian Dancers.",
			Date:        time.Date(2025, 6, 20, 19, 0, 0, 0, time.UTC),
			Location:    "Gas Station Arts Centre, Winnipeg",
			Organizer:   "Ukrainian Dance Federation",
			ContactInfo: "Ukrainian Cultural Organizations",
			Category:    "dance",
		},
		{
			Title:       "Ukrainian Embroidery Exhibition",
			Description: "Exhibition of traditional Ukrainian embroidery (vyshyvanka) with demonstrations of traditional techniques and patterns.",
			Date:        time.Date(2025, 4, 10, 13, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Museum of Canada, Winnipeg",
			Organizer:   "Ukrainian Women's Association",
			ContactInfo: "Ukrainian Museum",
			Category:    "arts",
		},
		{
			Title:       "Ukrainian Canadian Congress Annual Meeting",
			Description: "Annual meeting of the Ukrainian Canadian Congress Manitoba branch with community updates and cultural programming.",
			Date:        time.Date(2025, 11, 10, 14, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Cultural Centre, Winnipeg",
			Organizer:   "Ukrainian Canadian Congress - Manitoba",
			ContactInfo: "Ukrainian Canadian Congress",
			Category:    "community",
		},
		{
			Title:       "Ukrainian Youth Summer Camp",
			Description: "Week-long summer camp for Ukrainian-Canadian youth featuring language learning, cultural activities, and traditional crafts.",
			Date:        time.Date(2025, 7, 20, 9, 0, 0, 0, time.UTC),
			Location:    "Camp Trembowla, Manitoba",
			Organizer:   "Ukrainian Youth Association",
			ContactInfo: "Ukrainian Youth Organizations",
			Category:    "youth",
		},
		{
			Title:       "Ukrainian Seniors Social Evening",
			Description: "Monthly social gathering for Ukrainian seniors with traditional music, cards, refreshments, and community updates.",
			Date:        time.Date(2025, 2, 15, 14, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Cultural Centre, Winnipeg",
			Organizer:   "Ukrainian Seniors Association",
			ContactInfo: "Ukrainian Cultural Centre",
			Category:    "seniors",
		},
		{
			Title:       "Support Ukraine Fundraising Gala",
			Description: "Community fundraising event supporting humanitarian aid for Ukraine with cultural performances and silent auction.",
			Date:        time.Date(2025, 3, 22, 18, 0, 0, 0, time.UTC),
			Location:    "Fairmont Winnipeg Hotel",
			Organizer:   "Ukrainian Canadian Congress - Manitoba",
			ContactInfo: "Ukrainian Canadian Congress",
			Category:    "fundraising",
		},
		{
			Title:       "Ukrainian-Canadian Professional Network Meeting",
			Description: "Networking event for Ukrainian-Canadian professionals and business owners with guest speakers and business development opportunities.",
			Date:        time.Date(2025, 10, 5, 17, 30, 0, 0, time.UTC),
			Location:    "Delta Winnipeg Hotel",
			Organizer:   "Ukrainian Professional and Business Federation",
			ContactInfo: "Ukrainian Professional Association",
			Category:    "professional",
		},
		{
			Title:       "Ukrainian Food Festival",
			Description: "Celebration of Ukrainian cuisine featuring traditional foods like perogies, cabbage rolls, and Ukrainian breads with cooking demonstrations.",
			Date:        time.Date(2025, 9, 15, 11, 0, 0, 0, time.UTC),
			Location:    "Ukrainian Cultural Centre, Winnipeg",
			Organizer:   "Ukrainian Women's Association",
			ContactInfo: "Ukrainian Cultural Centre",
			Category:    "food",
		},
		{
			Title:       "Ukrainian Harvest Festival",
			Description: "Traditional harvest celebration with Ukrainian folk activities, traditional foods, and agricultural heritage demonstrations.",
			Date:        time.Date(2025, 9, 30, 13, 0, 0, 0, time.UTC),
			Location:    "Rural Ukrainian Communities, Manitoba",
			Organizer:   "Ukrainian Rural Communities",
			ContactInfo: "Local Ukrainian Organizations",
			Category:    "agricultural",
		},
	}
}
