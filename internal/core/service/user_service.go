package service

import (
	"context"
	"encoding/json"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// UserService exposes public profiles and self-service profile updates.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindProfile(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	fields, err := profileFields(in)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return s.users.FindByID(ctx, id)
	}
	return s.users.Update(ctx, id, fields)
}

// profileFields converts the pointer-style patch into a column map.
func profileFields(in ports.UpdateProfileInput) (map[string]any, error) {
	fields := map[string]any{}
	if in.FirstName != nil {
		fields["first_name"] = *in.FirstName
	}
	if in.LastName != nil {
		fields["last_name"] = *in.LastName
	}
	if in.Avatar != nil {
		fields["avatar"] = *in.Avatar
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Skills != nil {
		// The skills column holds JSON text; map updates bypass the struct
		// serializer, so encode here.
		encoded, err := json.Marshal(*in.Skills)
		if err != nil {
			return nil, err
		}
		fields["skills"] = string(encoded)
	}
	if in.HourlyRate != nil {
		fields["hourly_rate"] = *in.HourlyRate
	}
	return fields, nil
}
