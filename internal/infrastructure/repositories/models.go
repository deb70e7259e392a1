package repositories

import "time"

// Database models for the catalog schema (with GORM tags)

type DBCategory struct {
	ID    uint   `gorm:"primaryKey"`
	Title string `gorm:"uniqueIndex;size:255"`
}

func (DBCategory) TableName() string { return "categories" }

type DBSeller struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`
	Address   string `gorm:"size:255"`
	Website   string `gorm:"size:255"`
}

func (DBSeller) TableName() string { return "sellers" }

type DBTag struct {
	ID      uint   `gorm:"primaryKey"`
	TagName string `gorm:"uniqueIndex;size:255"`
}

func (DBTag) TableName() string { return "tags" }

type DBProduct struct {
	ID          uint    `gorm:"primaryKey"`
	CategoryID  uint    `gorm:"index"`
	Title       string  `gorm:"size:255;index"`
	Description string  `gorm:"type:text"`
	Tags        []DBTag `gorm:"many2many:product_tags;joinForeignKey:ProductID;joinReferences:TagID"`
	Width       int
	Height      int
	Depth       int
	Weight      int
	ImageURL    string `gorm:"size:255"`
	Archived    bool   `gorm:"index"`
	CreatedAt   time.Time
}

func (DBProduct) TableName() string { return "products" }

type DBProductInstance struct {
	ID        uint    `gorm:"primaryKey"`
	ProductID uint    `gorm:"index"`
	SellerID  uint    `gorm:"index"`
	Price     float64 `gorm:"type:numeric(10,2)"`
	Amount    int
}

func (DBProductInstance) TableName() string { return "product_instances" }

type DBProfile struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"uniqueIndex"`
	PhoneNumber string `gorm:"size:15"`
	BirthDate   time.Time
	AvatarURL   string `gorm:"size:255"`
}

func (DBProfile) TableName() string { return "profiles" }

type DBSubscriber struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"uniqueIndex"`
	Email  string `gorm:"size:255"`
}

func (DBSubscriber) TableName() string { return "subscribers" }

// DBVerificationAttempt holds the single outstanding verification code per
// user. The unique index on user_id backs the upsert in Replace.
type DBVerificationAttempt struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"uniqueIndex"`
	Code             string `gorm:"size:4"`
	ProviderResponse string `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (DBVerificationAttempt) TableName() string { return "verification_attempts" }
