package crop

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/farmergpt/internal/dbtest"
	"github.com/BruksfildServices01/farmergpt/internal/httperr"
	"github.com/BruksfildServices01/farmergpt/internal/infra/repository"
	"github.com/BruksfildServices01/farmergpt/internal/models"
)

type suite struct {
	create *CreateCrop
	get    *GetCrop
	list   *ListCrops
	update *UpdateCrop
	remove *DeleteCrop
	alice  uint
	bob    uint
}

func newSuite(t *testing.T) *suite {
	t.Helper()

	db := dbtest.New(t)
	ids := make([]uint, 0, 2)
	for _, name := range []string{"alice", "bob"} {
		u := &models.User{Username: name, Email: name + "@example.com", PasswordHash: "x"}
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("create user: %v", err)
		}
		ids = append(ids, u.ID)
	}

	crops := repository.NewCropGormRepository(db)
	profiles := repository.NewProfileGormRepository(db)

	return &suite{
		create: NewCreateCrop(crops, profiles, nil),
		get:    NewGetCrop(crops, profiles),
		list:   NewListCrops(crops, profiles),
		update: NewUpdateCrop(crops, profiles, nil),
		remove: NewDeleteCrop(crops, profiles, nil),
		alice:  ids[0],
		bob:    ids[1],
	}
}

func ptr[T any](v T) *T { return &v }

func wheat() Fields {
	return Fields{
		Name:                ptr("Wheat"),
		Area:                ptr(decimal.RequireFromString("3.5")),
		PlantingDate:        ptr("2025-11-01"),
		ExpectedHarvestDate: ptr("2026-04-01"),
	}
}

func TestCreateCropDefaults(t *testing.T) {
	s := newSuite(t)

	c, err := s.create.Execute(context.Background(), s.alice, wheat())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if c.Status != "planning" {
		t.Errorf("expected default status planning, got %q", c.Status)
	}
	if c.Farmer.User.Username != "alice" {
		t.Errorf("expected farmer alice, got %q", c.Farmer.User.Username)
	}
}

func TestCreateCropValidation(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	missing := wheat()
	missing.Area = nil
	if _, err := s.create.Execute(ctx, s.alice, missing); !httperr.HasCode(err, "invalid_request") {
		t.Errorf("expected invalid_request, got %v", err)
	}

	badDate := wheat()
	badDate.PlantingDate = ptr("01-11-2025")
	if _, err := s.create.Execute(ctx, s.alice, badDate); !httperr.HasCode(err, "invalid_date") {
		t.Errorf("expected invalid_date, got %v", err)
	}

	badStatus := wheat()
	badStatus.Status = ptr("sprouting")
	if _, err := s.create.Execute(ctx, s.alice, badStatus); !httperr.HasCode(err, "invalid_status") {
		t.Errorf("expected invalid_status, got %v", err)
	}

	badArea := wheat()
	badArea.Area = ptr(decimal.RequireFromString("1.005"))
	if _, err := s.create.Execute(ctx, s.alice, badArea); !httperr.HasCode(err, "invalid_area") {
		t.Errorf("expected invalid_area, got %v", err)
	}
}

func TestCreateCropAcceptsNegativeArea(t *testing.T) {
	s := newSuite(t)

	in := wheat()
	in.Area = ptr(decimal.RequireFromString("-2.00"))

	c, err := s.create.Execute(context.Background(), s.alice, in)
	if err != nil {
		t.Fatalf("expected negative area to be stored, got %v", err)
	}
	if c.Area.StringFixed(2) != "-2.00" {
		t.Fatalf("unexpected area %s", c.Area.StringFixed(2))
	}
}

func TestCropIsolation(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	c, err := s.create.Execute(ctx, s.alice, wheat())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := s.list.Execute(ctx, s.bob)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("bob sees %d crops", len(list))
	}

	_, err = s.get.Execute(ctx, s.bob, c.ID)
	if !httperr.HasCode(err, "crop_not_found") || !httperr.HasStatus(err, http.StatusNotFound) {
		t.Fatalf("expected crop_not_found, got %v", err)
	}

	// bob now has a profile; still not found
	if _, err := s.create.Execute(ctx, s.bob, wheat()); err != nil {
		t.Fatalf("create for bob: %v", err)
	}
	if _, err := s.update.Execute(ctx, s.bob, c.ID, Fields{Notes: ptr("mine")}, false); !httperr.HasCode(err, "crop_not_found") {
		t.Fatalf("expected crop_not_found on update, got %v", err)
	}
	if err := s.remove.Execute(ctx, s.bob, c.ID); !httperr.HasCode(err, "crop_not_found") {
		t.Fatalf("expected crop_not_found on delete, got %v", err)
	}

	if _, err := s.get.Execute(ctx, s.alice, c.ID); err != nil {
		t.Fatalf("owner lost access: %v", err)
	}
}

func TestUpdateCropStatusUnconstrained(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	c, err := s.create.Execute(ctx, s.alice, wheat())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, status := range []string{"harvested", "planning", "growing"} {
		got, err := s.update.Execute(ctx, s.alice, c.ID, Fields{Status: ptr(status)}, false)
		if err != nil {
			t.Fatalf("status %s: %v", status, err)
		}
		if got.Status != status {
			t.Fatalf("expected %s, got %s", status, got.Status)
		}
	}

	if _, err := s.update.Execute(ctx, s.alice, c.ID, Fields{Name: ptr("Durum")}, true); !httperr.HasCode(err, "invalid_request") {
		t.Fatalf("expected full update to require fields, got %v", err)
	}

	got, err := s.get.Execute(ctx, s.alice, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Wheat" || got.Status != "growing" {
		t.Fatalf("unexpected stored crop %s/%s", got.Name, got.Status)
	}
}

func TestDeleteCrop(t *testing.T) {
	s := newSuite(t)
	ctx := context.Background()

	c, err := s.create.Execute(ctx, s.alice, wheat())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.remove.Execute(ctx, s.alice, c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.get.Execute(ctx, s.alice, c.ID); !httperr.HasCode(err, "crop_not_found") {
		t.Fatalf("expected deleted crop to be gone, got %v", err)
	}
}
