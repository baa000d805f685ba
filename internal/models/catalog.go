package models

// Static marketing catalog served on the public endpoints. The front end
// renders these verbatim; provider-created services live in the services
// table instead.

type ServiceType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"imageUrl"`
}

type Testimonial struct {
	ID       int     `json:"id"`
	Text     string  `json:"text"`
	Rating   float64 `json:"rating"`
	Author   string  `json:"author"`
	PetName  string  `json:"petName"`
	ImageURL string  `json:"imageUrl"`
}

type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var ServiceTypes = []ServiceType{
	{
		ID:          1,
		Name:        "Cremation Services",
		Description: "Private or communal cremation options with respectful handling of your pet's remains.",
		Price:       149,
		ImageURL:    "https://images.unsplash.com/photo-1608096299210-db7e38487075?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          2,
		Name:        "Memorial Keepsakes",
		Description: "Custom urns, paw prints, fur clippings, and personalized memorial items.",
		Price:       69,
		ImageURL:    "https://images.unsplash.com/photo-1568807942916-85eaddb85858?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          3,
		Name:        "Farewell Ceremonies",
		Description: "Guided memorial services to celebrate your pet's life with family and friends.",
		Price:       199,
		ImageURL:    "https://images.unsplash.com/photo-1583511655826-05700442cea1?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          4,
		Name:        "Home Euthanasia",
		Description: "Compassionate end-of-life care in the comfort of your own home with a licensed vet.",
		Price:       299,
		ImageURL:    "https://images.unsplash.com/photo-1534551767192-78b8dd45b51b?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          5,
		Name:        "Garden Memorials",
		Description: "Beautiful garden stones, plaques, and plantable memorials to create a living tribute.",
		Price:       89,
		ImageURL:    "https://images.unsplash.com/photo-1542856391-010fb87dcfed?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          6,
		Name:        "Grief Counseling",
		Description: "Supportive counseling sessions to help you navigate the loss of your beloved companion.",
		Price:       79,
		ImageURL:    "https://images.unsplash.com/photo-1557805058-28eaf9afd318?auto=format&fit=crop&w=800&q=80",
	},
}

var Testimonials = []Testimonial{
	{
		ID:       1,
		Text:     "PawRest helped us say goodbye to our beloved Max with dignity. The cremation service was respectful, and we received a beautiful personalized urn that now sits on our mantle.",
		Rating:   5,
		Author:   "Sarah M.",
		PetName:  "Max",
		ImageURL: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?auto=format&fit=crop&w=100&q=80",
	},
	{
		ID:       2,
		Text:     "Finding a compassionate provider through PawRest made all the difference during our difficult time. The memorial service for our cat Luna was beautiful and healing.",
		Rating:   5,
		Author:   "Robert J.",
		PetName:  "Luna",
		ImageURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=100&q=80",
	},
	{
		ID:       3,
		Text:     "The grief counseling services through PawRest helped our family, especially our children, process the loss of our dog Bailey. We're grateful for the support.",
		Rating:   4.5,
		Author:   "Jennifer P.",
		PetName:  "Bailey",
		ImageURL: "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&w=100&q=80",
	},
}

var FAQs = []FAQ{
	{
		ID:       1,
		Question: "What types of pets do you provide services for?",
		Answer:   "We provide memorial services for all types of pets, including dogs, cats, birds, rabbits, reptiles, and small animals. Our providers are experienced in handling various species with respect and dignity.",
	},
	{
		ID:       2,
		Question: "How quickly can services be arranged?",
		Answer:   "Many of our providers offer same-day or next-day services in emergency situations. Standard scheduling is typically available within 2-3 days. You can check real-time availability when booking through our platform.",
	},
	{
		ID:       3,
		Question: "How do I know if a service provider is reputable?",
		Answer:   "All service providers on PawRest undergo a thorough verification process, including business document verification, government ID checks, and customer reviews. You can view their credentials, certifications, and ratings on their profile pages.",
	},
	{
		ID:       4,
		Question: "What keepsake options are available?",
		Answer:   "We offer a wide range of keepsake options including custom urns, paw print impressions, fur clippings, memorial jewelry containing ashes, photo frames, and personalized garden stones. Providers may have unique offerings, so be sure to check their specific services.",
	},
	{
		ID:       5,
		Question: "How much do pet memorial services cost?",
		Answer:   "Service costs vary depending on the type of service, your location, and your specific needs. Basic services start at around $149, while comprehensive packages can range from $299-$599. Each provider lists their specific pricing on their profile.",
	},
}
