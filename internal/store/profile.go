package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/amahle/famcheck/ent"
	"github.com/amahle/famcheck/ent/assessment"
	"github.com/amahle/famcheck/ent/profile"
)

type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Create(ctx context.Context, p *Profile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	builder := r.client.Profile.Create().
		SetID(p.ID).
		SetHouseholdID(p.HouseholdID).
		SetType(profile.Type(p.Type)).
		SetWorryTags(p.WorryTags)
	if p.DateOfBirth != nil {
		builder = builder.SetDateOfBirth(*p.DateOfBirth)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "create profile", Err: err}
	}
	p.CreatedAt = created.CreatedAt
	return nil
}

func (r *profileRepo) Get(ctx context.Context, id string) (*Profile, error) {
	row, err := r.client.Profile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "profile", ID: id}
		}
		return nil, &PersistenceError{Op: "get profile", Err: err}
	}
	return fromEntProfile(row), nil
}

func (r *profileRepo) List(ctx context.Context, householdID string) ([]*Profile, error) {
	rows, err := r.client.Profile.Query().
		Where(profile.HouseholdID(householdID)).
		Order(ent.Asc(profile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "list profiles", Err: err}
	}

	out := make([]*Profile, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromEntProfile(row))
	}
	return out, nil
}

func (r *profileRepo) UpdateWorryTags(ctx context.Context, id string, tags []string) error {
	err := r.client.Profile.UpdateOneID(id).
		SetWorryTags(tags).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Kind: "profile", ID: id}
		}
		return &PersistenceError{Op: "update worry tags", Err: err}
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id string) error {
	// Detach first so completed runs outlive the profile.
	_, err := r.client.Assessment.Update().
		Where(assessment.ProfileID(id)).
		ClearProfileID().
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "detach assessments", Err: err}
	}

	err = r.client.Profile.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Kind: "profile", ID: id}
		}
		return &PersistenceError{Op: "delete profile", Err: err}
	}
	return nil
}

func fromEntProfile(row *ent.Profile) *Profile {
	p := &Profile{
		ID:          row.ID,
		HouseholdID: row.HouseholdID,
		Type:        ProfileType(row.Type),
		WorryTags:   row.WorryTags,
		CreatedAt:   row.CreatedAt,
	}
	if row.DateOfBirth != nil {
		t := *row.DateOfBirth
		p.DateOfBirth = &t
	}
	return p
}
