package leads

import "time"

// SubmissionStatus tracks the manual triage state of a contact submission.
// The API only ever writes SubmissionStatusNew; transitions happen outside
// this service.
type SubmissionStatus string

const (
	SubmissionStatusNew     SubmissionStatus = "new"
	SubmissionStatusRead    SubmissionStatus = "read"
	SubmissionStatusReplied SubmissionStatus = "replied"
)

// SubscriberStatus enumerates newsletter subscription states.
type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberStatusBounced      SubscriberStatus = "bounced"
)

// SubscriberSource records which form produced a subscriber.
type SubscriberSource string

const (
	SourceNewsletter SubscriberSource = "newsletter"
	SourceDownload   SubscriberSource = "download"
	SourceContact    SubscriberSource = "contact"
)

// ContactSubmission models one contact-form message. Rows are append-only
// from the API's perspective; status transitions are manual.
type ContactSubmission struct {
	ID        string           `gorm:"column:id;primaryKey;size:190;not null" json:"id"`
	Name      string           `gorm:"column:name;size:320;not null" json:"name"`
	Email     string           `gorm:"column:email;size:320;not null;index" json:"email"`
	Company   string           `gorm:"column:company;size:320;not null;default:''" json:"company,omitempty"`
	Message   string           `gorm:"column:message;type:text;not null" json:"message"`
	Status    SubmissionStatus `gorm:"column:status;size:32;not null;default:new" json:"status"`
	IPAddress string           `gorm:"column:ip_address;size:64;not null;default:''" json:"ipAddress"`
	UserAgent string           `gorm:"column:user_agent;size:512;not null;default:''" json:"userAgent"`
	CreatedAt time.Time        `gorm:"column:created_at;not null" json:"createdAt"`
}

// TableName provides the explicit table binding for GORM.
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}

// DownloadRecord is the append-only audit log of resource download requests,
// one row per request, never deduplicated.
type DownloadRecord struct {
	ID         string    `gorm:"column:id;primaryKey;size:190;not null" json:"id"`
	Email      string    `gorm:"column:email;size:320;not null;index" json:"email"`
	Name       string    `gorm:"column:name;size:320;not null;default:''" json:"name,omitempty"`
	Company    string    `gorm:"column:company;size:320;not null;default:''" json:"company,omitempty"`
	ResourceID string    `gorm:"column:resource_id;size:190;not null;index" json:"resourceId"`
	IPAddress  string    `gorm:"column:ip_address;size:64;not null;default:''" json:"ipAddress"`
	UserAgent  string    `gorm:"column:user_agent;size:512;not null;default:''" json:"userAgent"`
	Subscribe  bool      `gorm:"column:subscribe;not null;default:false" json:"subscribe"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

// TableName provides the explicit table binding for GORM.
func (DownloadRecord) TableName() string {
	return "downloads"
}

// Subscriber is keyed by email: at most one row per address, always.
// Repeat submissions update name, status and source in place.
type Subscriber struct {
	Email     string           `gorm:"column:email;primaryKey;size:320;not null" json:"email"`
	Name      string           `gorm:"column:name;size:320;not null;default:''" json:"name,omitempty"`
	Status    SubscriberStatus `gorm:"column:status;size:32;not null;default:active" json:"status"`
	Source    SubscriberSource `gorm:"column:source;size:32;not null;default:newsletter" json:"source"`
	Tags      string           `gorm:"column:tags;type:text;not null;default:'[]'" json:"tags"`
	CreatedAt time.Time        `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt time.Time        `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName provides the explicit table binding for GORM.
func (Subscriber) TableName() string {
	return "subscribers"
}
