package render

import (
	"strconv"

	"github.com/a-h/templ"
)

type Testimonial struct {
	Name    string
	College string
	Text    string
	Rating  int
}

type FAQ struct {
	Question string
	Answer   string
}

// Categories offered by the upload form.
var Categories = []string{"Line Follower", "Robotic Arm", "IoT Robot", "AI Robot", "Custom"}

var Testimonials = []Testimonial{
	{
		Name:    "Arjun Verma",
		College: "IIT Delhi - RoboClub",
		Text:    "RoboShow gave our team the perfect platform to showcase our autonomous drone project. The feedback we received helped us improve significantly!",
		Rating:  5,
	},
	{
		Name:    "Meera Krishnan",
		College: "NIT Trichy - Tech Society",
		Text:    "Amazing platform for robotics enthusiasts! The rating system is fair and the interface is super clean. Highly recommend for all robotics teams.",
		Rating:  5,
	},
	{
		Name:    "Karthik Menon",
		College: "BITS Pilani - Innovation Lab",
		Text:    "We showcased our IoT robot here and got valuable insights from peers. Great community and excellent project visibility!",
		Rating:  4,
	},
	{
		Name:    "Ananya Das",
		College: "VIT Vellore - RoboWars Team",
		Text:    "The best place to display our robotics projects. Clean design, easy to use, and the testimonials feature builds real credibility.",
		Rating:  5,
	},
}

var FAQs = []FAQ{
	{
		Question: "How do I upload a project?",
		Answer:   `Click on the "Upload Project" link in the navigation menu or the "+ Add Project" button on the homepage. Fill in the project details including title, team name, description, category, and technologies used. Click Submit to publish your project.`,
	},
	{
		Question: "Can I edit my project later?",
		Answer:   "Direct editing is not available on the site in this version. You can upload the project again with updated information.",
	},
	{
		Question: "Is registration required?",
		Answer:   "No registration is required to browse, rate or upload. Signing up links your uploads to your account so you can find them under My Projects.",
	},
	{
		Question: "How is rating calculated?",
		Answer:   "The rating is calculated as an average of all the ratings (1-5 stars) submitted through the feedback system. The more feedback your project receives, the more accurate and representative your rating becomes.",
	},
	{
		Question: "Can I delete feedback?",
		Answer:   "In this version, feedback is permanent once submitted to maintain authenticity and integrity of the review system. Make sure to provide constructive and thoughtful feedback.",
	},
}

func TestimonialCard(t Testimonial) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="testimonial-card">`)
		hw.rawf(`<p class="testimonial-text">"%s"</p>`, esc(t.Text))
		hw.raw(`<div class="testimonial-author">`)
		hw.rawf(`<div class="testimonial-avatar">%s</div>`, esc(Initials(t.Name)))
		hw.rawf(`<div class="testimonial-info"><h4>%s</h4><p>%s</p></div>`, esc(t.Name), esc(t.College))
		hw.raw(`</div><div class="rating">`)
		hw.component(StaticStars(float64(t.Rating)))
		hw.raw(`</div></div>`)
	})
}

// FAQItem uses details/summary so answers toggle without script.
func FAQItem(f FAQ, index int) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.rawf(`<details class="faq-item" data-faq-index="%s">`, strconv.Itoa(index))
		hw.rawf(`<summary class="faq-question"><span>%s</span><span class="faq-icon">▼</span></summary>`, esc(f.Question))
		hw.rawf(`<div class="faq-answer"><div class="faq-answer-content">%s</div></div>`, esc(f.Answer))
		hw.raw(`</details>`)
	})
}
