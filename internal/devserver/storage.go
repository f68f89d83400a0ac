package devserver

import (
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freelancehq/cli/internal/models"
)

// Database records are kept separate from the wire models so the API shape
// stays stable regardless of how the fixtures are stored.

type userRecord struct {
	ID           int `gorm:"primaryKey"`
	Email        string
	Name         string
	PasswordHash string
}

func (userRecord) TableName() string { return "users" }

func (r userRecord) toModel() models.User {
	return models.User{ID: r.ID, Email: r.Email, Name: r.Name}
}

type clientRecord struct {
	ID      int `gorm:"primaryKey"`
	Tenant  int
	Name    string
	Email   string
	Phone   string
	Company string
}

func (clientRecord) TableName() string { return "clients" }

func (r clientRecord) toModel() models.Client {
	return models.Client{
		ID:      r.ID,
		Tenant:  r.Tenant,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
	}
}

type projectRecord struct {
	ID          int `gorm:"primaryKey"`
	Tenant      int
	ClientID    int
	Name        string
	Description string
	Status      string
	StartDate   string
	EndDate     string
	Tasks       []taskRecord `gorm:"foreignKey:ProjectID"`
}

func (projectRecord) TableName() string { return "projects" }

func (r projectRecord) toModel(withTasks bool) models.Project {
	project := models.Project{
		ID:          r.ID,
		Tenant:      r.Tenant,
		Client:      r.ClientID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}

	if withTasks {
		project.Tasks = make([]models.Task, 0, len(r.Tasks))
		for _, task := range r.Tasks {
			project.Tasks = append(project.Tasks, task.toModel())
		}
	}

	return project
}

type taskRecord struct {
	ID        int `gorm:"primaryKey"`
	ProjectID int
	Title     string
	Status    string
	Priority  int
}

func (taskRecord) TableName() string { return "tasks" }

func (r taskRecord) toModel() models.Task {
	return models.Task{
		ID:       r.ID,
		Project:  r.ProjectID,
		Title:    r.Title,
		Status:   r.Status,
		Priority: r.Priority,
	}
}

type invoiceRecord struct {
	ID            int `gorm:"primaryKey"`
	InvoiceNumber string
	ClientID      int
	Total         float64
	Status        string
}

func (invoiceRecord) TableName() string { return "invoices" }

func (r invoiceRecord) toModel() models.Invoice {
	return models.Invoice{
		ID:            r.ID,
		InvoiceNumber: r.InvoiceNumber,
		Client:        r.ClientID,
		Total:         r.Total,
		Status:        r.Status,
	}
}

// openDatabase opens (or creates) the SQLite fixture database and migrates
// the schema.
func openDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&userRecord{},
		&clientRecord{},
		&projectRecord{},
		&taskRecord{},
		&invoiceRecord{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// DemoEmail and DemoPassword are the seeded development credentials.
const (
	DemoEmail    = "demo@freelancehq.io"
	DemoPassword = "freelance"
)

// seed populates the database with development fixtures on first run.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&userRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logrus.Infoln("Seeding development fixtures")

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	fixtures := []any{
		&userRecord{ID: 1, Email: DemoEmail, Name: "Demo Freelancer", PasswordHash: string(hash)},

		&clientRecord{ID: 1, Tenant: 1, Name: "Acme Corp", Email: "billing@acme.test", Company: "Acme"},
		&clientRecord{ID: 2, Tenant: 1, Name: "Globex", Email: "hello@globex.test", Phone: "555-0100", Company: "Globex"},
		&clientRecord{ID: 3, Tenant: 1, Name: "Initech", Email: "ap@initech.test", Company: "Initech"},

		&projectRecord{ID: 1, Tenant: 1, ClientID: 1, Name: "Website redesign", Description: "Marketing site refresh", Status: "active", StartDate: "2025-01-06"},
		&projectRecord{ID: 2, Tenant: 1, ClientID: 2, Name: "Mobile app", Description: "Companion app MVP", Status: "active", StartDate: "2025-02-03"},
		&projectRecord{ID: 3, Tenant: 1, ClientID: 3, Name: "Data migration", Description: "Legacy CRM export", Status: "completed", StartDate: "2024-10-01", EndDate: "2024-12-20"},

		&taskRecord{ID: 1, ProjectID: 1, Title: "Wireframes", Status: "done", Priority: 1},
		&taskRecord{ID: 2, ProjectID: 1, Title: "Homepage build", Status: "in_progress", Priority: 2},
		&taskRecord{ID: 3, ProjectID: 2, Title: "Auth flow", Status: "todo", Priority: 1},
		&taskRecord{ID: 4, ProjectID: 3, Title: "Verify exports", Status: "done", Priority: 3},

		&invoiceRecord{ID: 1, InvoiceNumber: "INV-001", ClientID: 1, Total: 4200, Status: "paid"},
		&invoiceRecord{ID: 2, InvoiceNumber: "INV-002", ClientID: 2, Total: 1800, Status: "sent"},
		&invoiceRecord{ID: 3, InvoiceNumber: "INV-003", ClientID: 3, Total: 950, Status: "overdue"},
	}

	for _, fixture := range fixtures {
		if err := db.Create(fixture).Error; err != nil {
			return err
		}
	}

	return nil
}

// findUserByEmail looks a user up for login.
func findUserByEmail(db *gorm.DB, email string) (*userRecord, error) {
	var user userRecord
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
