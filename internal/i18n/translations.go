package i18n

// Translation tables, compiled into the binary. Both locales carry the same
// key set; the page_content tests assert parity.
var translations = map[Locale]map[string]string{
	LocaleEnglish: {
		// Navigation
		"nav.home":        "Home",
		"nav.services":    "Services",
		"nav.experiences": "Experiences",
		"nav.gallery":     "Gallery",
		"nav.about":       "About",
		"nav.contact":     "Contact",
		"nav.flights":     "Private Flights",

		// Hero
		"hero.tagline":     "Luxury Travel Experiences",
		"hero.discover":    "Discover",
		"hero.description": "Your worldwide travel partner – crafting unforgettable journeys across our curated destinations.",
		"hero.cta.plan":    "Plan Your Journey",
		"hero.cta.explore": "Explore Experiences",
		"hero.scroll":      "Discover",

		// Destinations
		"dest.greece":              "Greece",
		"dest.greece.tagline":      "Where myths come alive",
		"dest.italy":               "Italy",
		"dest.italy.tagline":       "La dolce vita awaits",
		"dest.austria":             "Austria",
		"dest.austria.tagline":     "Alpine elegance",
		"dest.srilanka":            "Sri Lanka",
		"dest.srilanka.tagline":    "Island of wonders",
		"dest.worldwide":           "Worldwide",
		"dest.worldwide.tagline":   "Global adventures",
		"destinations.tagline":     "Our Destinations",
		"destinations.title":       "Discover Our World",
		"destinations.highlights":  "Highlights",
		"destinations.greece.desc": "Ancient ruins, sun-kissed islands, and Mediterranean magic await in the birthplace of Western civilization.",
		"destinations.italy.desc":  "From Renaissance art to coastal glamour, experience la dolce vita in every corner of this timeless destination.",

		// Services
		"services.tagline":              "Our Services",
		"services.title":                "Exceptional Travel Services",
		"services.description":          "From personalized itineraries to exclusive access, we handle every detail of your luxury journey.",
		"services.cta":                  "View All Services",
		"services.custom.title":         "Custom Itineraries",
		"services.custom.desc":          "Bespoke travel plans tailored to your preferences",
		"services.concierge.title":      "24/7 Concierge",
		"services.concierge.desc":       "Round-the-clock support throughout your journey",
		"services.access.title":         "Exclusive Access",
		"services.access.desc":          "VIP experiences and private tours",
		"services.accommodations.title": "Luxury Accommodations",
		"services.accommodations.desc":  "Hand-selected hotels and private villas",
		"services.page.tagline":         "Premium Services",
		"services.page.title":           "Luxury Travel Services",
		"services.page.description":     "Experience unparalleled service across Greece, Italy, Poland, Austria, UAE, Sri Lanka, and the Philippines.",
		"services.page.cta":             "Plan Your Journey",

		// Experiences
		"experiences.tagline":          "Curated Experiences",
		"experiences.title":            "Unforgettable Moments",
		"experiences.description":      "From private yacht charters in Greece to wine tastings in Italy, we craft experiences that become lifelong memories.",
		"experiences.cta":              "Explore All Experiences",
		"experiences.page.tagline":     "Curated Experiences",
		"experiences.page.title":       "Unforgettable Journeys",
		"experiences.page.description": "Discover handcrafted experiences across our featured destinations worldwide.",

		// About
		"about.tagline":           "About Us",
		"about.title":             "Your Journey, Our Passion",
		"about.description":       "With decades of experience crafting luxury travel experiences across Greece, Italy, Poland, Austria, UAE, Sri Lanka, and the Philippines, we transform dreams into extraordinary journeys.",
		"about.cta":               "Learn More About Us",
		"about.stat.destinations": "Destinations",
		"about.stat.travelers":    "Happy Travelers",
		"about.stat.experiences":  "Curated Experiences",
		"about.stat.support":      "Support",
		"about.page.tagline":      "Our Story",
		"about.page.title":        "About Opatija Travel",
		"about.page.description":  "Your trusted partner for luxury travel experiences across the globe.",

		// Gallery
		"gallery.tagline":     "Visual Journey",
		"gallery.title":       "Destination Gallery",
		"gallery.description": "Explore stunning imagery from our featured destinations around the world.",
		"gallery.filter.all":  "All Destinations",

		// Contact section and form
		"contact.tagline":                   "Get In Touch",
		"contact.title":                     "Start Your Journey",
		"contact.description":               "Ready to experience the world in extraordinary style? Let our travel experts craft your perfect journey.",
		"contact.form.name":                 "Full Name",
		"contact.form.email":                "Email Address",
		"contact.form.phone":                "Phone Number",
		"contact.form.country":              "Country of Residence",
		"contact.form.destination":          "Preferred Destination",
		"contact.form.destination.select":   "Select a destination",
		"contact.form.travelers":            "Number of Travelers",
		"contact.form.dates":                "Preferred Travel Dates",
		"contact.form.budget":               "Budget Range",
		"contact.form.budget.select":        "Select budget range",
		"contact.form.travelerType":         "Traveler Type",
		"contact.form.experienceType":       "Experience Types",
		"contact.form.requests":             "Additional Requests",
		"contact.form.requests.placeholder": "Tell us about your dream journey...",
		"contact.form.submit":               "Send Inquiry",
		"contact.form.submitting":           "Sending...",
		"contact.success.title":             "Thank You!",
		"contact.success.message":           "Your inquiry has been submitted. Our travel experts will contact you within 24 hours.",
		"contact.error":                     "Something went wrong. Please try again.",
		"contact.page.tagline":              "Contact Us",
		"contact.page.title":                "Get In Touch",
		"contact.page.description":          "Ready to start planning your dream journey? We're here to help.",

		// Private flights page
		"flights.page.tagline":     "Private Aviation",
		"flights.page.title":       "Private Flights",
		"flights.page.description": "Seamless private aviation with hand-picked aircraft, flexible scheduling, and complete discretion.",
		"flights.upcoming.title":   "Available Flights",
		"flights.upcoming.empty":   "No flights currently scheduled. Contact us to arrange a private charter.",
		"flights.col.route":        "Route",
		"flights.col.date":         "Departure",
		"flights.col.aircraft":     "Aircraft",
		"flights.col.seats":        "Seats",
		"flights.col.price":        "From",
		"flights.cta":              "Request a Charter",

		// Footer
		"footer.description":  "Crafting extraordinary travel experiences across the world's most captivating destinations.",
		"footer.quickLinks":   "Quick Links",
		"footer.destinations": "Destinations",
		"footer.contact":      "Contact",
		"footer.rights":       "All rights reserved.",
		"footer.crafted":      "Crafted with passion for extraordinary journeys",

		// Not found
		"notfound.title":   "Page Not Found",
		"notfound.message": "The page you are looking for does not exist.",
		"notfound.cta":     "Back to Home",

		// Traveler type labels
		"contact.traveler.solo":        "Solo Traveler",
		"contact.traveler.couple":      "Couple/Partner",
		"contact.traveler.familyKids":  "Family with Young Children",
		"contact.traveler.familyTeens": "Family with Teens",
		"contact.traveler.multiGen":    "Multi-Generational",
		"contact.traveler.friends":     "Group of Friends",
		"contact.traveler.business":    "Business Travel",

		// Experience type labels
		"contact.exp.hotel":    "Luxury Hotel or Resort Booking",
		"contact.exp.villa":    "Private Villa Rental",
		"contact.exp.cruise":   "Exclusive Cruise or Yacht Charter",
		"contact.exp.safari":   "Bespoke Safari or Adventure Travel",
		"contact.exp.tours":    "Private Guided Tours & VIP Access",
		"contact.exp.wellness": "Wellness & Spa Retreat",
		"contact.exp.cultural": "Cultural & Heritage",
		"contact.exp.culinary": "Culinary",
		"contact.exp.beach":    "Beach & Relaxation",
		"contact.exp.city":     "City Exploration",

		// Destination labels
		"contact.dest.italy":       "Italy",
		"contact.dest.france":      "France",
		"contact.dest.greece":      "Greece",
		"contact.dest.croatia":     "Croatia",
		"contact.dest.portugal":    "Portugal",
		"contact.dest.spain":       "Spain",
		"contact.dest.austria":     "Austria",
		"contact.dest.switzerland": "Switzerland",
		"contact.dest.srilanka":    "Sri Lanka",
		"contact.dest.thailand":    "Thailand",
		"contact.dest.japan":       "Japan",
		"contact.dest.other":       "Other",

		// Budget labels
		"contact.budget.under10k": "$5,000 - $10,000 (Hotel/Resort Only)",
		"contact.budget.10to20k":  "$10,000 - $20,000 (Hotel + Personalized Enhancements)",
		"contact.budget.20to50k":  "$20,000 - $50,000 (Fully Customized Luxury Experience)",
		"contact.budget.50to100k": "$50,000 - $100,000 (Ultra-Luxury Journey)",
		"contact.budget.over100k": "$100,000+ (Bespoke, Once-in-a-Lifetime Itinerary)",
		"contact.budget.flexible": "Flexible",

		// Submission status labels
		"contact.status.new":       "New",
		"contact.status.contacted": "Contacted",
		"contact.status.completed": "Completed",
		"contact.status.cancelled": "Cancelled",
	},
	LocaleHebrew: {
		// Navigation
		"nav.home":        "בית",
		"nav.services":    "שירותים",
		"nav.experiences": "חוויות",
		"nav.gallery":     "גלריה",
		"nav.about":       "אודות",
		"nav.contact":     "צור קשר",
		"nav.flights":     "טיסות פרטיות",

		// Hero
		"hero.tagline":     "חוויות נסיעה יוקרתיות",
		"hero.discover":    "גלה את",
		"hero.description": "השותף שלך לנסיעות ברחבי העולם – יוצרים מסעות בלתי נשכחים ביעדים הנבחרים שלנו.",
		"hero.cta.plan":    "תכנן את המסע שלך",
		"hero.cta.explore": "גלה חוויות",
		"hero.scroll":      "גלה",

		// Destinations
		"dest.greece":              "יוון",
		"dest.greece.tagline":      "איפה המיתוסים מתעוררים לחיים",
		"dest.italy":               "איטליה",
		"dest.italy.tagline":       "החיים המתוקים מחכים",
		"dest.austria":             "אוסטריה",
		"dest.austria.tagline":     "אלגנטיות אלפינית",
		"dest.srilanka":            "סרי לנקה",
		"dest.srilanka.tagline":    "אי הפלאות",
		"dest.worldwide":           "ברחבי העולם",
		"dest.worldwide.tagline":   "הרפתקאות גלובליות",
		"destinations.tagline":     "היעדים שלנו",
		"destinations.title":       "גלה את העולם שלנו",
		"destinations.highlights":  "נקודות עניין",
		"destinations.greece.desc": "חורבות עתיקות, איים מוזהבים וקסם ים תיכוני מחכים במולדת התרבות המערבית.",
		"destinations.italy.desc":  "מאמנות הרנסנס ועד הזוהר החופי, חווה את החיים המתוקים בכל פינה של יעד נצחי זה.",

		// Services
		"services.tagline":              "השירותים שלנו",
		"services.title":                "שירותי נסיעות יוצאי דופן",
		"services.description":          "ממסלולים מותאמים אישית ועד גישה בלעדית, אנו מטפלים בכל פרט במסע היוקרתי שלך.",
		"services.cta":                  "צפה בכל השירותים",
		"services.custom.title":         "מסלולים מותאמים",
		"services.custom.desc":          "תוכניות נסיעה מותאמות להעדפותיך",
		"services.concierge.title":      "קונסיירז' 24/7",
		"services.concierge.desc":       "תמיכה מסביב לשעון לאורך כל המסע",
		"services.access.title":         "גישה בלעדית",
		"services.access.desc":          "חוויות VIP וסיורים פרטיים",
		"services.accommodations.title": "לינה יוקרתית",
		"services.accommodations.desc":  "מלונות נבחרים בקפידה ווילות פרטיות",
		"services.page.tagline":         "שירותים פרימיום",
		"services.page.title":           "שירותי נסיעות יוקרתיות",
		"services.page.description":     "חווה שירות ללא תחרות ביוון, איטליה, פולין, אוסטריה, איחוד האמירויות, סרי לנקה והפיליפינים.",
		"services.page.cta":             "תכנן את המסע שלך",

		// Experiences
		"experiences.tagline":          "חוויות נבחרות",
		"experiences.title":            "רגעות בלתי נשכחים",
		"experiences.description":      "משייט יאכטות פרטי ביוון ועד טעימות יין באיטליה, אנו יוצרים חוויות שהופכות לזכרונות לכל החיים.",
		"experiences.cta":              "גלה את כל החוויות",
		"experiences.page.tagline":     "חוויות נבחרות",
		"experiences.page.title":       "מסעות בלתי נשכחים",
		"experiences.page.description": "גלה חוויות מותאמות אישית ביעדים המובילים שלנו ברחבי העולם.",

		// About
		"about.tagline":           "אודותינו",
		"about.title":             "המסע שלך, התשוקה שלנו",
		"about.description":       "עם עשרות שנים של ניסיון ביצירת חוויות נסיעה יוקרתיות ביוון, איטליה, פולין, אוסטריה, איחוד האמירויות, סרי לנקה והפיליפינים, אנו הופכים חלומות למסעות יוצאי דופן.",
		"about.cta":               "למד עוד עלינו",
		"about.stat.destinations": "יעדים",
		"about.stat.travelers":    "נוסעים מרוצים",
		"about.stat.experiences":  "חוויות נבחרות",
		"about.stat.support":      "תמיכה",
		"about.page.tagline":      "הסיפור שלנו",
		"about.page.title":        "אודות Opatija Travel",
		"about.page.description":  "השותף המהימן שלך לחוויות נסיעה יוקרתיות ברחבי העולם.",

		// Gallery
		"gallery.tagline":     "מסע ויזואלי",
		"gallery.title":       "גלריית יעדים",
		"gallery.description": "גלה תמונות מדהימות מהיעדים המובילים שלנו ברחבי העולם.",
		"gallery.filter.all":  "כל היעדים",

		// Contact section and form
		"contact.tagline":                   "צור קשר",
		"contact.title":                     "התחל את המסע שלך",
		"contact.description":               "מוכן לחוות את העולם בסגנון יוצא דופן? תן למומחי הנסיעות שלנו ליצור את המסע המושלם שלך.",
		"contact.form.name":                 "שם מלא",
		"contact.form.email":                "כתובת אימייל",
		"contact.form.phone":                "מספר טלפון",
		"contact.form.country":              "מדינת מגורים",
		"contact.form.destination":          "יעד מועדף",
		"contact.form.destination.select":   "בחר יעד",
		"contact.form.travelers":            "מספר נוסעים",
		"contact.form.dates":                "תאריכי נסיעה מועדפים",
		"contact.form.budget":               "טווח תקציב",
		"contact.form.budget.select":        "בחר טווח תקציב",
		"contact.form.travelerType":         "סוג נוסע",
		"contact.form.experienceType":       "סוגי חוויות",
		"contact.form.requests":             "בקשות נוספות",
		"contact.form.requests.placeholder": "ספר לנו על המסע החלומי שלך...",
		"contact.form.submit":               "שלח פנייה",
		"contact.form.submitting":           "שולח...",
		"contact.success.title":             "תודה רבה!",
		"contact.success.message":           "הפנייה שלך נשלחה. מומחי הנסיעות שלנו יצרו איתך קשר תוך 24 שעות.",
		"contact.error":                     "משהו השתבש. אנא נסה שוב.",
		"contact.page.tagline":              "צור קשר",
		"contact.page.title":                "דבר איתנו",
		"contact.page.description":          "מוכן להתחיל לתכנן את מסע החלומות שלך? אנחנו כאן לעזור.",

		// Private flights page
		"flights.page.tagline":     "תעופה פרטית",
		"flights.page.title":       "טיסות פרטיות",
		"flights.page.description": "תעופה פרטית חלקה עם מטוסים נבחרים, לוחות זמנים גמישים ודיסקרטיות מלאה.",
		"flights.upcoming.title":   "טיסות זמינות",
		"flights.upcoming.empty":   "אין טיסות מתוכננות כרגע. צרו קשר לתיאום טיסת שכר פרטית.",
		"flights.col.route":        "מסלול",
		"flights.col.date":         "המראה",
		"flights.col.aircraft":     "מטוס",
		"flights.col.seats":        "מושבים",
		"flights.col.price":        "החל מ",
		"flights.cta":              "בקש טיסת שכר",

		// Footer
		"footer.description":  "יוצרים חוויות נסיעה יוצאות דופן ביעדים המרתקים ביותר בעולם.",
		"footer.quickLinks":   "קישורים מהירים",
		"footer.destinations": "יעדים",
		"footer.contact":      "צור קשר",
		"footer.rights":       "כל הזכויות שמורות.",
		"footer.crafted":      "נוצר עם תשוקה למסעות יוצאי דופן",

		// Not found
		"notfound.title":   "הדף לא נמצא",
		"notfound.message": "הדף שחיפשת אינו קיים.",
		"notfound.cta":     "חזרה לדף הבית",

		// Traveler type labels
		"contact.traveler.solo":        "מטייל יחיד",
		"contact.traveler.couple":      "זוג",
		"contact.traveler.familyKids":  "משפחה עם ילדים צעירים",
		"contact.traveler.familyTeens": "משפחה עם מתבגרים",
		"contact.traveler.multiGen":    "רב-דורי",
		"contact.traveler.friends":     "קבוצת חברים",
		"contact.traveler.business":    "נסיעת עסקים",

		// Experience type labels
		"contact.exp.hotel":    "הזמנת מלון או אתר נופש יוקרתי",
		"contact.exp.villa":    "השכרת וילה פרטית",
		"contact.exp.cruise":   "שייט או יאכטה בלעדיים",
		"contact.exp.safari":   "ספארי או הרפתקה בהתאמה אישית",
		"contact.exp.tours":    "סיורים פרטיים וגישת VIP",
		"contact.exp.wellness": "ריטריט ספא ובריאות",
		"contact.exp.cultural": "תרבות ומורשת",
		"contact.exp.culinary": "קולינריה",
		"contact.exp.beach":    "חוף ורגיעה",
		"contact.exp.city":     "סיור עירוני",

		// Destination labels
		"contact.dest.italy":       "איטליה",
		"contact.dest.france":      "צרפת",
		"contact.dest.greece":      "יוון",
		"contact.dest.croatia":     "קרואטיה",
		"contact.dest.portugal":    "פורטוגל",
		"contact.dest.spain":       "ספרד",
		"contact.dest.austria":     "אוסטריה",
		"contact.dest.switzerland": "שווייץ",
		"contact.dest.srilanka":    "סרי לנקה",
		"contact.dest.thailand":    "תאילנד",
		"contact.dest.japan":       "יפן",
		"contact.dest.other":       "אחר",

		// Budget labels
		"contact.budget.under10k": "5,000$ - 10,000$ (מלון/אתר נופש בלבד)",
		"contact.budget.10to20k":  "10,000$ - 20,000$ (מלון + שדרוגים אישיים)",
		"contact.budget.20to50k":  "20,000$ - 50,000$ (חוויית יוקרה בהתאמה מלאה)",
		"contact.budget.50to100k": "50,000$ - 100,000$ (מסע אולטרה-יוקרתי)",
		"contact.budget.over100k": "+100,000$ (מסלול חד-פעמי בהתאמה אישית)",
		"contact.budget.flexible": "גמיש",

		// Submission status labels
		"contact.status.new":       "חדש",
		"contact.status.contacted": "נוצר קשר",
		"contact.status.completed": "הושלם",
		"contact.status.cancelled": "בוטל",
	},
}
