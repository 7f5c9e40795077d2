package routes

const (
	// Health
	Health = "/health"

	// Auth
	AuthLogin   = "/api/v1/auth/login"
	AuthRefresh = "/api/v1/auth/refresh"
	AuthLogout  = "/api/v1/auth/logout"
	AuthMe      = "/api/v1/auth/me"

	// Properties
	PropertiesBase        = "/api/v1/properties"
	PropertyByID          = "/api/v1/properties/{id}"
	PropertyPublish       = "/api/v1/properties/{id}/publish"
	PropertyListingIntent = "/api/v1/properties/{id}/listing-intent"

	// Leads (create is public: the consumer site posts enquiries)
	LeadsBase  = "/api/v1/leads"
	LeadByID   = "/api/v1/leads/{id}"
	LeadStatus = "/api/v1/leads/{id}/status"

	// Banners
	BannersBase   = "/api/v1/banners"
	BannerByID    = "/api/v1/banners/{id}"
	BannerStatus  = "/api/v1/banners/{id}/status"
	BannerReorder = "/api/v1/banners/{id}/reorder"

	// Property headings (dynamic listing attributes)
	HeadingsBase   = "/api/v1/property-headings"
	HeadingByID    = "/api/v1/property-headings/{id}"
	HeadingMove    = "/api/v1/property-headings/{id}/move"
	HeadingVisible = "/api/v1/property-headings/{id}/visible"

	// Blog
	BlogBase    = "/api/v1/blog"
	BlogByID    = "/api/v1/blog/{id}"
	BlogBySlug  = "/api/v1/blog/slug/{slug}"
	BlogPublish = "/api/v1/blog/{id}/publish"

	// Go Green campaign (create is public)
	GreenBase = "/api/v1/green-forms"
	GreenByID = "/api/v1/green-forms/{id}"

	// Uploads
	UploadPropertyImage = "/api/v1/uploads/properties/{id}"
	UploadBlogImage     = "/api/v1/uploads/blog/{id}"
	UploadBannerImage   = "/api/v1/uploads/banners/{id}"
	UploadGreenPhoto    = "/api/v1/uploads/green"

	// Dashboard
	DashboardSummary = "/api/v1/dashboard/summary"
	Visits           = "/api/v1/visits"
)
