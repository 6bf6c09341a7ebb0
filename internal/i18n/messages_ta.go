package i18n

var messagesTA = map[string]string{
	// Navigation
	"nav.home":        "முகப்பு",
	"nav.about":       "எங்களைப் பற்றி",
	"nav.affiliation": "இணைப்பு",
	"nav.course":      "பாட விவரங்கள்",
	"nav.contact":     "தொடர்பு",
	"nav.lang_en":     "EN",
	"nav.lang_ta":     "தமிழ்",

	// Hero section
	"hero.title":       "RJR கல்வி VSD மையத்திற்கு வரவேற்கிறோம்",
	"hero.subtitle":    "வர்ம மசாஜ் பட்டயம் (DVM)",
	"hero.description": "மனோன்மணியம் சுந்தரனார் பல்கலைக்கழகத்துடன் இணைந்த எங்கள் விரிவான வர்ம மசாஜ் திட்டத்தின் மூலம் பாரம்பரிய குணப்படுத்தும் கலையில் தேர்ச்சி பெறுங்கள்.",
	"hero.cta":         "இப்போதே விண்ணப்பிக்கவும்",

	// About section
	"about.title":        "RJR கல்வி VSD மையம் பற்றி",
	"about.description1": "RJR கல்வி VSD மையம் பாரம்பரிய குணப்படுத்தும் கல்வியின் கலங்கரை விளக்காக நிற்கிறது, பண்டைய வர்ம மசாஜ் பயிற்சியைப் பாதுகாக்கவும் முன்னேற்றவும் அர்ப்பணிக்கப்பட்டுள்ளது.",
	"about.description2": "வர்ம சிகிச்சையில் உண்மையான, விரிவான பயிற்சி அளிக்கும் நோக்கத்துடன் நிறுவப்பட்ட எங்கள் நிறுவனம், நவீன கற்பித்தல் முறைகளுடன் காலங்காலமாக கடைபிடிக்கப்படும் நுட்பங்களை இணைக்கிறது.",
	"about.description3": "எங்கள் சிறப்புக்கான அர்ப்பணிப்பு எங்கள் பல்கலைக்கழக இணைப்பிலும், பாரம்பரிய குணப்படுத்தும் கல்வியின் உயர்ந்த தரத்தை பராமரிக்கும் எங்கள் அர்ப்பணிப்பிலும் பிரதிபலிக்கிறது.",
	"about.affiliation":  "இணைக்கப்பட்டுள்ளது",
	"about.university":   "மனோன்மணியம் சுந்தரனார் பல்கலைக்கழகம்",

	// Course section
	"course.title":               "வர்ம மசாஜ் பட்டயம் (DVM)",
	"course.overview":            "பாட விளக்கம்",
	"course.duration":            "காலம்",
	"course.duration_value":      "12 மாத விரிவான திட்டம்",
	"course.certification":       "சான்றிதழ்",
	"course.certification_value": "பல்கலைக்கழக-இணைந்த பட்டயம் அங்கீகாரம்",
	"course.learning":            "கற்றல் முறை",
	"course.learning_value":      "கோட்பாடுடன் கூடிய நடைமுறை பயிற்சி",
	"course.traditional":         "பாரம்பரிய அறிவு",
	"course.traditional_desc":    "தலைமுறைகளாக கடத்தப்பட்ட உண்மையான வர்ம நுட்பங்களைக் கற்றுக்கொள்ளுங்கள்",
	"course.faculty":             "நிபுணர் ஆசிரியர்கள்",
	"course.faculty_desc":        "அனுபவம் வாய்ந்த மாஸ்டர்கள் மற்றும் தகுதிவாய்ந்த பயிற்றுவிப்பாளர்களிடம் கற்றுக்கொள்ளுங்கள்",
	"course.career":              "தொழில் வாய்ப்புகள்",
	"course.career_desc":         "சுகாதாரம், நல்வாழ்வு மற்றும் சிகிச்சை தொழில்களுக்கான கதவுகளைத் திறக்கவும்",
	"course.curriculum":          "பாட திட்டம்",
	"course.core":                "முக்கிய பாடங்கள்",
	"course.practical":           "நடைமுறை பயிற்சி",

	// Contact section
	"contact.title":       "தொடர்பு கொள்ளுங்கள்",
	"contact.description": "பாரம்பரிய குணப்படுத்துதலில் உங்கள் பயணத்தைத் தொடங்கத் தயாரா? எங்கள் வர்ம மசாஜ் பட்டயப் பாடநெறி பற்றி மேலும் அறிய எங்களைத் தொடர்பு கொள்ளுங்கள்.",
	"contact.form_title":  "எங்களுக்கு ஒரு செய்தி அனுப்புங்கள்",
	"contact.name":        "முழு பெயர்",
	"contact.email":       "மின்னஞ்சல் முகவரி",
	"contact.phone":       "தொலைபேசி எண்",
	"contact.message":     "செய்தி",
	"contact.send":        "செய்தி அனுப்பு",
	"contact.info":        "தொடர்பு தகவல்",
	"contact.address":     "முகவரி",
	"contact.find_us":     "எங்களைக் கண்டுபிடி",
	"contact.ready":       "உங்கள் பயணத்தைத் தொடங்கத் தயாரா?",
	"contact.ready_desc":  "எங்கள் விரிவான வர்ம மசாஜ் பட்டயப் பாடநெறியில் சேர்ந்து பாரம்பரிய குணப்படுத்துதலில் சான்றளிக்கப்பட்ட பயிற்சியாளராக மாறுங்கள்.",
	"contact.apply":       "இன்றே விண்ணப்பிக்கவும்",

	// Contact form feedback
	"contact.form.success":        "உங்கள் செய்திக்கு நன்றி! விரைவில் உங்களைத் தொடர்பு கொள்வோம்.",
	"contact.form.missing_fields": "தேவையான அனைத்து புலங்களையும் நிரப்பவும்.",
	"contact.form.invalid":        "உங்கள் உள்ளீட்டைச் சரிபார்த்து மீண்டும் முயற்சிக்கவும்.",
	"contact.form.server_error":   "எதிர்பாராத பிழை ஏற்பட்டது. பின்னர் மீண்டும் முயற்சிக்கவும்.",

	// Footer
	"footer.description":  "மனோன்மணியம் சுந்தரனார் பல்கலைக்கழகத்துடன் இணைந்த வர்ம மசாஜ் சிகிச்சையில் விரிவான கல்வியின் மூலம் பாரம்பரிய குணப்படுத்துதலைப் பாதுகாத்து முன்னேற்றுதல்.",
	"footer.quick_links":  "விரைவு இணைப்புகள்",
	"footer.contact_info": "தொடர்பு தகவல்",
	"footer.copyright":    "அனைத்து உரிமைகளும் பாதுகாக்கப்பட்டவை.",

	// Common
	"common.loading": "ஏற்றுகிறது...",
	"common.error":   "ஒரு பிழை ஏற்பட்டது",
	"common.success": "வெற்றி!",
}
