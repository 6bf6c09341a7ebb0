package i18n

var messagesEN = map[string]string{
	// Navigation
	"nav.home":        "Home",
	"nav.about":       "About",
	"nav.affiliation": "Affiliation",
	"nav.course":      "Course Details",
	"nav.contact":     "Contact",
	"nav.lang_en":     "EN",
	"nav.lang_ta":     "தமிழ்",

	// Hero section
	"hero.title":       "Welcome to RJR Education VSD Centre",
	"hero.subtitle":    "Diploma in Varma Massage (DVM)",
	"hero.description": "Master the ancient art of traditional healing through our comprehensive Varma Massage program, affiliated with Manonmaniam Sundaranar University.",
	"hero.cta":         "Apply Now",

	// About section
	"about.title":        "About RJR Education VSD Centre",
	"about.description1": "RJR Education VSD Centre stands as a beacon of traditional healing education, dedicated to preserving and advancing the ancient practice of Varma Massage. Our institution bridges the gap between traditional knowledge and modern educational standards.",
	"about.description2": "Founded with a mission to provide authentic, comprehensive training in Varma therapy, we combine time-honored techniques with contemporary teaching methodologies to create skilled practitioners who can serve communities with healing expertise.",
	"about.description3": "Our commitment to excellence is reflected in our university affiliation and our dedication to maintaining the highest standards of traditional healing education.",
	"about.affiliation":  "Affiliated with",
	"about.university":   "Manonmaniam Sundaranar University",

	// Course section
	"course.title":               "Diploma in Varma Massage (DVM)",
	"course.overview":            "Course Overview",
	"course.duration":            "Duration",
	"course.duration_value":      "12 months comprehensive program",
	"course.certification":       "Certification",
	"course.certification_value": "University-affiliated diploma recognition",
	"course.learning":            "Learning Method",
	"course.learning_value":      "Hands-on practical training with theory",
	"course.traditional":         "Traditional Knowledge",
	"course.traditional_desc":    "Learn authentic Varma techniques passed down through generations",
	"course.faculty":             "Expert Faculty",
	"course.faculty_desc":        "Learn from experienced masters and qualified instructors",
	"course.career":              "Career Prospects",
	"course.career_desc":         "Open doors to healthcare, wellness, and therapeutic careers",
	"course.curriculum":          "Course Curriculum",
	"course.core":                "Core Subjects",
	"course.practical":           "Practical Training",

	// Contact section
	"contact.title":       "Get in Touch",
	"contact.description": "Ready to begin your journey in traditional healing? Contact us to learn more about our Diploma in Varma Massage program.",
	"contact.form_title":  "Send us a Message",
	"contact.name":        "Full Name",
	"contact.email":       "Email Address",
	"contact.phone":       "Phone Number",
	"contact.message":     "Message",
	"contact.send":        "Send Message",
	"contact.info":        "Contact Information",
	"contact.address":     "Address",
	"contact.find_us":     "Find Us",
	"contact.ready":       "Ready to Start Your Journey?",
	"contact.ready_desc":  "Join our comprehensive Diploma in Varma Massage program and become a certified practitioner in traditional healing.",
	"contact.apply":       "Apply Today",

	// Contact form feedback
	"contact.form.success":        "Thank you for your message! We will get back to you soon.",
	"contact.form.missing_fields": "Please fill in all required fields.",
	"contact.form.invalid":        "Please check your input and try again.",
	"contact.form.server_error":   "An unexpected error occurred. Please try again later.",

	// Footer
	"footer.description":  "Preserving and advancing traditional healing through comprehensive education in Varma Massage therapy, affiliated with Manonmaniam Sundaranar University.",
	"footer.quick_links":  "Quick Links",
	"footer.contact_info": "Contact Info",
	"footer.copyright":    "All rights reserved.",

	// Common
	"common.loading": "Loading...",
	"common.error":   "An error occurred",
	"common.success": "Success!",
}
