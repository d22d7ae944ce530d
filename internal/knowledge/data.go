package knowledge

// Topic identifiers.
const (
	TopicWelcome    = "welcome"
	TopicAbout      = "about"
	TopicEducation  = "education"
	TopicExperience = "experience"
	TopicSkills     = "skills"
	TopicContact    = "contact"
	TopicCV         = "cv"
	TopicUnknown    = "unknown"
)

// topicData defines every topic in insertion order. The order is load
// bearing: the matcher breaks score ties in favor of earlier entries.
var topicData = []Topic{
	{
		ID:   TopicWelcome,
		Text: "Hi there! 👋 I'm Cole Lenting's portfolio assistant. How can I help you learn more about Cole?",
		FollowUps: []FollowUp{
			{Label: "Tell me about Cole", Next: TopicAbout},
			{Label: "Education background", Next: TopicEducation},
			{Label: "Work experience", Next: TopicExperience},
			{Label: "Technical skills", Next: TopicSkills},
			{Label: "Contact information", Next: TopicContact},
		},
	},
	{
		ID: TopicAbout,
		Text: "Cole Lenting is a dedicated ICT graduate specializing in Multimedia. He's passionate about front-end development " +
			"and UI/UX design, with strong foundations in creativity and decision-making. Cole is committed to creating impactful " +
			"technological solutions and is currently enhancing his skills in Adobe software while exploring backend development.",
		FollowUps: []FollowUp{
			{Label: "Education background", Next: TopicEducation},
			{Label: "Work experience", Next: TopicExperience},
			{Label: "Technical skills", Next: TopicSkills},
			{Label: "Contact information", Next: TopicContact},
			{Label: "Back to main menu", Next: TopicWelcome},
		},
	},
	{
		ID: TopicEducation,
		Text: "Cole's educational background includes:\n\n" +
			"• **Diploma in ICT in Multimedia** from CPUT (2022-2024)\n" +
			"• **Full Stack Developer (Java)** certification from IT Academy (2021)\n" +
			"• **NQF Level 4** from Hopefield High School (2020) with a bachelor's pass\n\n" +
			"Cole has been admitted to pursue an Advanced Diploma in ICT, specializing in Multimedia.",
		FollowUps: []FollowUp{
			{Label: "Work experience", Next: TopicExperience},
			{Label: "Technical skills", Next: TopicSkills},
			{Label: "Contact information", Next: TopicContact},
			{Label: "Back to main menu", Next: TopicWelcome},
		},
	},
	{
		ID: TopicExperience,
		Text: "Cole's professional experience includes:\n\n" +
			"• **Work Integrated Learning** at BIIC | Pillar 5 Group (Jul-Sep 2024)\n" +
			"   - Integrated academic studies with practical work experience\n" +
			"   - Developed academic, social, and technological competencies\n\n" +
			"• **Website Developer** at Kamikaze Innovations (Feb-Jul 2024)\n" +
			"   - Designed and developed a custom website\n" +
			"   - Created color palettes and refined logo designs\n" +
			"   - Developed wireframes and mockups\n" +
			"   - Coded a responsive website from scratch\n" +
			"   - Delivered comprehensive documentation",
		FollowUps: []FollowUp{
			{Label: "Education background", Next: TopicEducation},
			{Label: "Technical skills", Next: TopicSkills},
			{Label: "Contact information", Next: TopicContact},
			{Label: "Back to main menu", Next: TopicWelcome},
		},
	},
	{
		ID: TopicSkills,
		Text: "Cole's technical skills include:\n\n" +
			"**Front-End Development**\n" +
			"• HTML\n• CSS/SASS\n• JavaScript\n• React\n• jQuery\n\n" +
			"**Back-End Development**\n" +
			"• PHP\n• Laravel\n• SQL\n• Database Management\n\n" +
			"**Design**\n" +
			"• Photoshop\n• Illustrator\n• InDesign\n• Capcut",
		FollowUps: []FollowUp{
			{Label: "Education background", Next: TopicEducation},
			{Label: "Work experience", Next: TopicExperience},
			{Label: "Contact information", Next: TopicContact},
			{Label: "Back to main menu", Next: TopicWelcome},
		},
	},
	{
		ID: TopicContact,
		Text: "You can contact Cole using the following information:\n\n" +
			"• Email: colelenting7@gmail.com\n" +
			"• Phone: 081 348 9356\n" +
			"• Location: Cape Town, SA\n\n" +
			"Feel free to reach out for collaboration opportunities or to discuss potential projects!",
		FollowUps: []FollowUp{
			{Label: "Education background", Next: TopicEducation},
			{Label: "Work experience", Next: TopicExperience},
			{Label: "Technical skills", Next: TopicSkills},
			{Label: "Back to main menu", Next: TopicWelcome},
		},
	},
	{
		ID: TopicCV,
		Text: "You can grab a copy of Cole's CV here: /static/Cole_Lenting_CV.pdf\n\n" +
			"It covers his education, work experience and technical skills in detail.",
		FollowUps: []FollowUp{
			{Label: "Work experience", Next: TopicExperience},
			{Label: "Contact information", Next: TopicContact},
			{Label: "Back to main menu", Next: TopicWelcome},
		},
	},
	{
		ID: TopicUnknown,
		Text: "I'm not sure I understood that correctly. Would you like to know about Cole's education, work experience, " +
			"technical skills, or how to contact him?",
		FollowUps: []FollowUp{
			{Label: "Tell me about Cole", Next: TopicAbout},
			{Label: "Education background", Next: TopicEducation},
			{Label: "Work experience", Next: TopicExperience},
			{Label: "Technical skills", Next: TopicSkills},
			{Label: "Contact information", Next: TopicContact},
		},
	},
}

// keywordIndex maps topic ids to lowercase trigger substrings. Matching
// is substring containment, so a short trigger can hit inside unrelated
// words; that approximation is intentional.
var keywordIndex = map[string][]string{
	TopicAbout:      {"about", "who", "cole", "background", "portfolio", "yourself", "bio"},
	TopicEducation:  {"education", "study", "college", "university", "diploma", "school", "cput", "learn", "qualification", "degree", "academic"},
	TopicExperience: {"experience", "work", "job", "career", "professional", "employ", "company", "worked", "project", "intern", "kamikaze", "biic", "wil"},
	TopicSkills:     {"skill", "tech", "technology", "programming", "language", "design", "develop", "software", "html", "css", "javascript", "react", "php", "photoshop", "adobe", "code"},
	TopicContact:    {"contact", "email", "phone", "call", "reach", "message", "touch", "hire", "connect"},
	TopicCV:         {"cv", "resume", "curriculum"},
}

// exactPhrases maps normalized canonical inputs straight to a topic,
// bypassing the remote completion path. Reserved for the quick-action
// labels and explicit CV requests; free-form text (greetings included)
// goes through the full resolution pipeline.
var exactPhrases = map[string]string{
	"tell me about cole":   TopicAbout,
	"about cole":           TopicAbout,
	"education background": TopicEducation,
	"work experience":      TopicExperience,
	"technical skills":     TopicSkills,
	"contact information":  TopicContact,
	"back to main menu":    TopicWelcome,
	"main menu":            TopicWelcome,
	"download cv":          TopicCV,
	"can i see your cv":    TopicCV,
	"send me your cv":      TopicCV,
}
