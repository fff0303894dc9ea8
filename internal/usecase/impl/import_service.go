package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// legacyStore is the shape of the JSON file the site used before it had a database.
type legacyStore struct {
	Products []legacyProduct `json:"products"`
	Services []legacyService `json:"services"`
	Tickets  []legacyTicket  `json:"tickets"`
	Blogs    []legacyBlog    `json:"blogs"`
	Settings *legacySettings `json:"settings"`
}

type legacyProduct struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Badge         string   `json:"badge"`
	InStock       *bool    `json:"inStock"`
	Specs         []string `json:"specs"`
	Description   string   `json:"description"`
}

type legacyService struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
	Color       string   `json:"color"`
	Popular     bool     `json:"popular"`
	Order       int      `json:"order"`
	Enabled     *bool    `json:"enabled"`
}

// legacyTicket stored the human-facing ticket id under "id".
type legacyTicket struct {
	ID       string `json:"id"`
	Subject  string `json:"subject"`
	Customer string `json:"customer"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Comment  string `json:"comment"`
}

type legacyBlog struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	ReadTime    string `json:"readTime"`
	Featured    bool   `json:"featured"`
	ContentPath string `json:"contentPath"`
}

type legacySettings struct {
	ShowScrollingHeadline *bool    `json:"showScrollingHeadline"`
	ShowSidebar           bool     `json:"showSidebar"`
	EnableTicketing       bool     `json:"enableTicketing"`
	MaintenanceMode       bool     `json:"maintenanceMode"`
	Headlines             []string `json:"headlines"`
}

type importService struct {
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceRepository
	ticketRepo   repository.TicketRepository
	blogRepo     repository.BlogRepository
	settingsRepo repository.SettingsRepository
	tickets      usecase.TicketUsecase
	logger       *slog.Logger
}

// ImportServiceParams holds dependencies for ImportService, injected by Fx.
type ImportServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	ServiceRepo  repository.ServiceRepository
	TicketRepo   repository.TicketRepository
	BlogRepo     repository.BlogRepository
	SettingsRepo repository.SettingsRepository
	Tickets      usecase.TicketUsecase
	Logger       *slog.Logger
}

// NewImportService creates the legacy import usecase.
func NewImportService(params ImportServiceParams) usecase.ImportUsecase {
	return &importService{
		productRepo:  params.ProductRepo,
		serviceRepo:  params.ServiceRepo,
		ticketRepo:   params.TicketRepo,
		blogRepo:     params.BlogRepo,
		settingsRepo: params.SettingsRepo,
		tickets:      params.Tickets,
		logger:       params.Logger,
	}
}

// ImportLegacy adds the file's records to the store. Blogs and tickets whose natural key is
// already taken are skipped, so the import can be re-run after a partial failure.
func (srv *importService) ImportLegacy(ctx context.Context, r io.Reader) (*usecase.ImportSummary, error) {
	var data legacyStore
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "failed to decode legacy store")
	}

	summary := &usecase.ImportSummary{}

	for _, p := range data.Products {
		if err := srv.productRepo.CreateProduct(ctx, p.toEntity()); err != nil {
			return summary, errors.Wrapf(err, "failed to import product %q", p.Name)
		}
		summary.Products++
	}

	for _, s := range data.Services {
		if err := srv.serviceRepo.CreateService(ctx, s.toEntity()); err != nil {
			return summary, errors.Wrapf(err, "failed to import service %q", s.Title)
		}
		summary.Services++
	}

	for _, t := range data.Tickets {
		if t.ID == "" {
			srv.logger.Warn("Skipping ticket without id", slog.String("subject", t.Subject))
			summary.Skipped++

			continue
		}

		err := srv.ticketRepo.CreateTicket(ctx, t.toEntity())
		if errors.Is(err, repository.ErrDuplicateTicketID) {
			srv.logger.Info("Skipping existing ticket", slog.String("ticket_id", t.ID))
			summary.Skipped++

			continue
		}
		if err != nil {
			return summary, errors.Wrapf(err, "failed to import ticket %q", t.ID)
		}
		summary.Tickets++
	}

	for _, b := range data.Blogs {
		err := srv.blogRepo.CreateBlog(ctx, b.toEntity())
		if errors.Is(err, repository.ErrDuplicateSlug) {
			srv.logger.Info("Skipping existing blog", slog.String("slug", b.Slug))
			summary.Skipped++

			continue
		}
		if err != nil {
			return summary, errors.Wrapf(err, "failed to import blog %q", b.Slug)
		}
		summary.Blogs++
	}

	if data.Settings != nil {
		if err := srv.importSettings(ctx, data.Settings); err != nil {
			return summary, err
		}
		summary.Settings = true
	}

	if err := srv.tickets.PrepareSequence(ctx); err != nil {
		return summary, err
	}

	return summary, nil
}

func (srv *importService) importSettings(ctx context.Context, s *legacySettings) error {
	if err := srv.settingsRepo.EnsureSettings(ctx, entity.DefaultSettings()); err != nil {
		return errors.Wrap(err, "failed to ensure settings")
	}

	showHeadline := s.ShowScrollingHeadline == nil || *s.ShowScrollingHeadline
	patch := entity.SettingsPatch{
		ShowScrollingHeadline: &showHeadline,
		ShowSidebar:           &s.ShowSidebar,
		EnableTicketing:       &s.EnableTicketing,
		MaintenanceMode:       &s.MaintenanceMode,
		Headlines:             s.Headlines,
		HeadlinesSet:          true,
	}

	if err := srv.settingsRepo.UpdateSettings(ctx, patch); err != nil {
		return errors.Wrap(err, "failed to import settings")
	}

	return nil
}

// toEntity converts the single "image" field older records carry into the image list.
func (p legacyProduct) toEntity() *entity.Product {
	images := p.Images
	if len(images) == 0 && p.Image != "" {
		images = []string{p.Image}
	}
	if len(images) > entity.MaxProductImages {
		images = images[:entity.MaxProductImages]
	}

	return &entity.Product{
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Images:        images,
		Badge:         p.Badge,
		InStock:       p.InStock == nil || *p.InStock,
		Specs:         p.Specs,
		Description:   p.Description,
	}
}

func (s legacyService) toEntity() *entity.CatalogService {
	color := s.Color
	if color == "" {
		color = entity.DefaultServiceColor
	}

	return &entity.CatalogService{
		Title:       s.Title,
		Description: s.Description,
		Icon:        s.Icon,
		Features:    s.Features,
		Price:       s.Price,
		Color:       color,
		Popular:     s.Popular,
		Order:       s.Order,
		Enabled:     s.Enabled == nil || *s.Enabled,
	}
}

func (t legacyTicket) toEntity() *entity.Ticket {
	priority := entity.TicketPriority(t.Priority)
	if !priority.IsValid() {
		priority = entity.PriorityMedium
	}
	status := entity.TicketStatus(t.Status)
	if !status.IsValid() {
		status = entity.StatusOpen
	}

	return &entity.Ticket{
		TicketID: t.ID,
		Subject:  t.Subject,
		Customer: t.Customer,
		Priority: priority,
		Status:   status,
		Date:     t.Date,
		Comment:  t.Comment,
	}
}

func (b legacyBlog) toEntity() *entity.Blog {
	return &entity.Blog{
		Slug:        b.Slug,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Image:       b.Image,
		Category:    b.Category,
		Author:      b.Author,
		Date:        b.Date,
		ReadTime:    b.ReadTime,
		Featured:    b.Featured,
		ContentPath: b.ContentPath,
	}
}
