package content

var posts = []Post{
	{
		ID:          1,
		Title:       "The Science Behind Seed-Bearing Lollipops: How We Made the Impossible Possible",
		Slug:        "science-behind-seed-bearing-lollipops",
		Author:      "Taylor Johnson",
		AuthorRole:  "Founder & Chief Botanical Officer",
		PublishDate: "2024-01-15",
		Category:    "Innovation",
		ReadTime:    "5 min read",
		Excerpt:     "Ever wondered how we embed living seeds into candy without compromising their viability? Take a peek behind the curtain at our proprietary process.",
		Body: "When people first hear about our lollipops, their immediate reaction is usually: \"Wait, how is that even possible?\" " +
			"The biggest hurdle wasn't the candy-making, it was preserving seed viability through temperatures that would normally destroy a seed instantly. " +
			"Our low-temperature process coats each seed in a biodegradable protective layer, and the stick itself is compressed plant fiber that breaks down in soil within 30 to 60 days, releasing the seeds at the right moment for germination.",
		Tags:     []string{"Innovation", "Science", "Sustainability"},
		Featured: true,
	},
	{
		ID:          2,
		Title:       "Growing Your First Herb Garden: A Beginner's Guide",
		Slug:        "growing-first-herb-garden-beginners-guide",
		Author:      "Maria Santos",
		AuthorRole:  "Head of Growing Programs",
		PublishDate: "2024-01-08",
		Category:    "Gardening",
		ReadTime:    "7 min read",
		Excerpt:     "From planting your first stick to your first harvest: everything a new gardener needs to know.",
		Body: "Once you've enjoyed your lollipop, the real fun begins. Plant the stick about an inch deep in moist potting soil, keep it in indirect sunlight, " +
			"and water lightly every other day. Most of our herb varieties sprout within two to three weeks. Sage and thyme are the most forgiving for first-timers; lavender rewards a little more patience.",
		Tags: []string{"Gardening", "Herbs", "Beginners"},
	},
	{
		ID:          3,
		Title:       "From Kitchen Experiment to National Brand",
		Slug:        "from-kitchen-experiment-to-national-brand",
		Author:      "Taylor Johnson",
		AuthorRole:  "Founder & Chief Botanical Officer",
		PublishDate: "2023-12-20",
		Category:    "Company",
		ReadTime:    "6 min read",
		Excerpt:     "Three years ago we ruined a lot of saucepans. Today our pops ship to all fifty states.",
		Body: "The first batch was a disaster. So were the next forty. The breakthrough came when we stopped trying to protect the seed from the candy " +
			"and started designing the stick around the seed instead. Everything about the product you hold today follows from that one inversion.",
		Tags: []string{"Company", "Story"},
	},
	{
		ID:          4,
		Title:       "Why Biodegradable Sticks Matter",
		Slug:        "why-biodegradable-sticks-matter",
		Author:      "Maria Santos",
		AuthorRole:  "Head of Growing Programs",
		PublishDate: "2023-12-05",
		Category:    "Sustainability",
		ReadTime:    "4 min read",
		Excerpt:     "Billions of plastic lollipop sticks end up in landfills every year. Ours end up as gardens.",
		Body: "A conventional lollipop stick takes centuries to break down. Ours disappears in two months and leaves flowers behind. " +
			"The compressed fiber sticks cost us roughly four times as much to produce, and we think that trade is the whole point of the company.",
		Tags:     []string{"Sustainability"},
		Featured: true,
	},
	{
		ID:          5,
		Title:       "Five Ways to Use Your Homegrown Herbs",
		Slug:        "five-ways-to-use-your-homegrown-herbs",
		Author:      "Dana Whitfield",
		AuthorRole:  "Recipe Developer",
		PublishDate: "2023-11-18",
		Category:    "Gardening",
		ReadTime:    "5 min read",
		Excerpt:     "Your sage pop grew up. Now what? Teas, butters, and a surprisingly good cocktail.",
		Body: "The sage from our most popular pop is a true culinary sage, which means everything from brown-butter pasta to an after-dinner tea. " +
			"Lemongrass wants to be syrup; thyme wants to be compound butter; and lavender, used sparingly, makes the best shortbread you will ever bake.",
		Tags: []string{"Gardening", "Recipes"},
	},
}
