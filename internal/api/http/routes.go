package httpapi

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/temperature-heatmap/internal/chart"
	"github.com/i474232898/temperature-heatmap/internal/heatmap"
	"github.com/i474232898/temperature-heatmap/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the page, the rendered artefacts and the API into the Fiber app.
func RegisterRoutes(app *fiber.App, service *heatmap.Service) {
	app.Get("/", func(c *fiber.Ctx) error {
		tree := service.Tree()
		return render(c, fiber.MIMETextHTMLCharsetUTF8, func(buf *bytes.Buffer) error {
			return chart.WritePage(buf, &tree)
		})
	})

	app.Get("/chart.svg", func(c *fiber.Ctx) error {
		tree := service.Tree()
		return render(c, "image/svg+xml", func(buf *bytes.Buffer) error {
			return chart.WriteSVG(buf, &tree)
		})
	})

	app.Get("/legend.svg", func(c *fiber.Ctx) error {
		tree := service.Tree()
		if tree.Legend == nil {
			return fiber.NewError(fiber.StatusNotFound, "no dataset loaded")
		}
		return render(c, "image/svg+xml", func(buf *bytes.Buffer) error {
			return chart.WriteLegendSVG(buf, &tree)
		})
	})

	app.Get("/chart.png", func(c *fiber.Ctx) error {
		tree := service.Tree()
		return render(c, "image/png", func(buf *bytes.Buffer) error {
			return chart.WritePNG(buf, &tree)
		})
	})

	v1 := app.Group("/api/v1")

	v1.Get("/dataset", func(c *fiber.Ctx) error {
		snap, err := latest(service)
		if err != nil {
			return err
		}
		return c.JSON(snap.Dataset)
	})

	v1.Get("/cells", func(c *fiber.Ctx) error {
		var q cellsQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		snap, err := latest(service)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"snapshot": snap.ID,
			"cells":    snap.Tree.CellsWhere(q.Year, q.Month),
		})
	})

	v1.Post("/hover", func(c *fiber.Ctx) error {
		var req hoverRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid hover payload")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(service.Hover(req.State, req.Event))
	})

	v1.Get("/snapshots", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"snapshots": service.History()})
	})
}

func render(c *fiber.Ctx, contentType string, write func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(buf.Bytes())
}

func latest(service *heatmap.Service) (heatmap.Snapshot, error) {
	snap, err := service.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return snap, fiber.NewError(fiber.StatusNotFound, "no dataset loaded")
		}
		return snap, fiber.NewError(fiber.StatusInternalServerError, "failed to read dataset")
	}
	return snap, nil
}

// cellsQuery filters cells by year and zero-based month.
type cellsQuery struct {
	Year  *int `validate:"omitempty,gte=0"`
	Month *int `validate:"omitempty,min=0,max=11"`
}

func (q *cellsQuery) bind(c *fiber.Ctx) error {
	var err error
	if q.Year, err = optionalInt(c.Query("year")); err != nil {
		return errors.New("year must be an integer")
	}
	if q.Month, err = optionalInt(c.Query("month")); err != nil {
		return errors.New("month must be an integer")
	}
	return nil
}

func optionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// hoverRequest carries the client's current tooltip state and the event to apply.
type hoverRequest struct {
	State chart.TooltipState `json:"state"`
	Event chart.HoverEvent   `json:"event"`
}
