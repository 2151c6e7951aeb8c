package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact types allowed in Profile.ContactInfo.
const (
	ContactEmail    = "Email"
	ContactPhone    = "Phone"
	ContactLocation = "Location"
)

type ContactInfo struct {
	Type  string `bson:"type" json:"type"`
	Value string `bson:"value" json:"value"`
	Icon  string `bson:"icon" json:"icon"`
}

type SocialLink struct {
	Platform string `bson:"platform" json:"platform"`
	URL      string `bson:"url" json:"url"`
	Icon     string `bson:"icon" json:"icon"`
}

type Stats struct {
	YearsExperience   int `bson:"years_experience" json:"years_experience"`
	ProjectsCompleted int `bson:"projects_completed" json:"projects_completed"`
	HappyClients      int `bson:"happy_clients" json:"happy_clients"`
}

type Skill struct {
	Name  string `bson:"name" json:"name"`
	Level int    `bson:"level" json:"level"` // proficiency, 0-100
}

type Service struct {
	Icon        string `bson:"icon" json:"icon"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
}

type Education struct {
	Institution string `bson:"institution" json:"institution"`
	Degree      string `bson:"degree" json:"degree"`
	Year        string `bson:"year" json:"year"`
	Description string `bson:"description" json:"description"`
}

type Experience struct {
	Company     string `bson:"company" json:"company"`
	Role        string `bson:"role" json:"role"`
	Duration    string `bson:"duration" json:"duration"`
	Description string `bson:"description" json:"description"`
}

// Profile is the site owner's content document. Exactly one exists; it is
// created with defaults on first read.
type Profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	Name        string `bson:"name" json:"name"`
	Title       string `bson:"title" json:"title"`
	Subtitle    string `bson:"subtitle" json:"subtitle"`
	Bio         string `bson:"bio" json:"bio"`
	AboutMeText string `bson:"about_me_text" json:"about_me_text"`

	ContactInfo []ContactInfo `bson:"contact_info" json:"contact_info"`
	SocialLinks []SocialLink  `bson:"social_links" json:"social_links"`

	ProfileImageURL string `bson:"profile_image_url" json:"profile_image_url"`
	ResumeURL       string `bson:"resume_url" json:"resume_url"`

	Stats      Stats        `bson:"stats" json:"stats"`
	Skills     []Skill      `bson:"skills" json:"skills"`
	Services   []Service    `bson:"services" json:"services"`
	Education  []Education  `bson:"education" json:"education"`
	Experience []Experience `bson:"experience" json:"experience"`
}

// DefaultProfile returns the seed document used when no profile exists yet.
func DefaultProfile() *Profile {
	now := time.Now()
	return &Profile{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        "Your Name",
		Title:       "Full-Stack Developer & AI Engineer",
		Subtitle:    "Building intelligent web solutions and robotics systems.",
		Bio:         "A passionate developer...",
		AboutMeText: "Write your about me text here...",
		ContactInfo: []ContactInfo{
			{Type: ContactEmail, Value: "email@example.com", Icon: "Mail"},
			{Type: ContactPhone, Value: "+1234567890", Icon: "Phone"},
			{Type: ContactLocation, Value: "Remote / Worldwide", Icon: "MapPin"},
		},
		SocialLinks: []SocialLink{
			{Platform: "GitHub", URL: "https://github.com", Icon: "Github"},
			{Platform: "LinkedIn", URL: "https://linkedin.com", Icon: "Linkedin"},
		},
		ProfileImageURL: "/placeholder-profile.png",
		ResumeURL:       "",
		Stats: Stats{
			YearsExperience:   5,
			ProjectsCompleted: 50,
			HappyClients:      30,
		},
		Skills: []Skill{
			{Name: "MongoDB", Level: 90},
			{Name: "Express.js", Level: 85},
			{Name: "React.js", Level: 95},
			{Name: "Node.js", Level: 90},
			{Name: "Python/AI", Level: 80},
			{Name: "Robotics", Level: 75},
		},
		Services: []Service{
			{Icon: "code", Title: "Web Development", Description: "Modern, responsive websites and web applications built with cutting-edge technologies."},
			{Icon: "brain", Title: "AI Solutions", Description: "Intelligent systems powered by machine learning and artificial intelligence."},
			{Icon: "smartphone", Title: "PWA Development", Description: "Progressive Web Apps that work offline and feel like native applications."},
			{Icon: "robot", Title: "Robotics", Description: "Embedded systems and robotics solutions for automation and IoT."},
		},
		Education: []Education{
			{Institution: "University Name", Degree: "Bachelor of Science in Computer Science", Year: "2020 - 2024", Description: "Focused on Software Engineering and Artificial Intelligence."},
		},
		Experience: []Experience{
			{Company: "Tech Company", Role: "Full Stack Developer", Duration: "2024 - Present", Description: "Developing scalable web applications using the MERN stack."},
		},
	}
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// unchanged; provided array fields replace the stored array wholesale.
// Field names double as the allow-list of what an admin may change.
type ProfileUpdate struct {
	Name        *string `json:"name"`
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Bio         *string `json:"bio"`
	AboutMeText *string `json:"about_me_text"`

	ContactInfo []ContactInfo `json:"contact_info"`
	SocialLinks []SocialLink  `json:"social_links"`

	ProfileImageURL *string `json:"profile_image_url"`
	ResumeURL       *string `json:"resume_url"`

	Stats      *Stats       `json:"stats"`
	Skills     []Skill      `json:"skills"`
	Services   []Service    `json:"services"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
}

// Apply merges the update into p. Scalars merge individually; arrays are
// replaced as a whole when present (an explicit empty array clears the field).
func (u *ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Subtitle != nil {
		p.Subtitle = *u.Subtitle
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.AboutMeText != nil {
		p.AboutMeText = *u.AboutMeText
	}
	if u.ContactInfo != nil {
		p.ContactInfo = u.ContactInfo
	}
	if u.SocialLinks != nil {
		p.SocialLinks = u.SocialLinks
	}
	if u.ProfileImageURL != nil {
		p.ProfileImageURL = *u.ProfileImageURL
	}
	if u.ResumeURL != nil {
		p.ResumeURL = *u.ResumeURL
	}
	if u.Stats != nil {
		p.Stats = *u.Stats
	}
	if u.Skills != nil {
		p.Skills = u.Skills
	}
	if u.Services != nil {
		p.Services = u.Services
	}
	if u.Education != nil {
		p.Education = u.Education
	}
	if u.Experience != nil {
		p.Experience = u.Experience
	}
	p.UpdatedAt = time.Now()
}

// Validate checks the fields present in the update.
func (u *ProfileUpdate) Validate() error {
	if u.Skills != nil {
		if err := ValidateSkills(u.Skills); err != nil {
			return err
		}
	}
	if u.ContactInfo != nil {
		if err := validateContactInfo(u.ContactInfo); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSkills checks skill proficiency bounds.
func ValidateSkills(skills []Skill) error {
	var errs []string
	for _, s := range skills {
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, "Skill level must be between 0 and 100")
			break
		}
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func validateContactInfo(contacts []ContactInfo) error {
	for _, c := range contacts {
		switch c.Type {
		case ContactEmail, ContactPhone, ContactLocation:
		default:
			return &ValidationError{Errors: []string{"Invalid contact type"}}
		}
	}
	return nil
}
