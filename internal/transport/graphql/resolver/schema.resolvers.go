package resolver

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"

	"github.com/google/uuid"
	"github.com/heartmarshall/prefstore-backend/internal/domain"
	"github.com/heartmarshall/prefstore-backend/internal/service/settings"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/prefstore-backend/internal/transport/graphql/model"
)

// UpdateSettings is the resolver for the updateSettings field.
func (r *mutationResolver) UpdateSettings(ctx context.Context, userID uuid.UUID, input []*model.SettingInput) (*model.UpdateSettingsPayload, error) {
	entries := make([]settings.SettingInput, len(input))
	for i, in := range input {
		entries[i] = settings.SettingInput{Key: in.Key, Value: in.Value}
	}

	result, err := r.settings.UpdateSettings(ctx, userID, entries)
	if err != nil {
		return nil, err
	}

	return &model.UpdateSettingsPayload{
		Success:  result.Success,
		User:     result.User,
		Settings: settingPtrs(result.Settings),
	}, nil
}

// BulkUpdateSettings is the resolver for the bulkUpdateSettings field.
func (r *mutationResolver) BulkUpdateSettings(ctx context.Context, updates []*model.BulkUpdateInput) (*model.BulkUpdatePayload, error) {
	items := make([]settings.BulkUpdateItem, len(updates))
	for i, u := range updates {
		items[i] = settings.BulkUpdateItem{UserID: u.UserID, Key: u.Key, Value: u.Value}
	}

	result, err := r.settings.BulkUpdate(ctx, items)
	if err != nil {
		return nil, err
	}

	failed := result.FailedUserIDs
	if failed == nil {
		failed = []uuid.UUID{}
	}
	return &model.BulkUpdatePayload{
		Success:       result.Success,
		UpdatedCount:  result.UpdatedCount,
		FailedUserIds: failed,
	}, nil
}

// DeleteUser is the resolver for the deleteUser field.
func (r *mutationResolver) DeleteUser(ctx context.Context, id uuid.UUID) (*model.DeleteUserPayload, error) {
	result, err := r.settings.DeleteUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.DeleteUserPayload{
		Success:   result.Success,
		DeletedID: result.DeletedID,
	}, nil
}

// User resolves user(id). A missing user yields null, not an error.
func (r *queryResolver) User(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.account.GetUser(ctx, id)
}

// Users resolves users(ids): one element per input id, input order, nullable
// elements for missing users.
func (r *queryResolver) Users(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	return r.account.GetUsers(ctx, ids)
}

// SearchUsers resolves searchUsers(query, includeSettings). When
// includeSettings is set, the settings loader is warmed for the whole result
// so nested User.settings resolutions share one batched fetch.
func (r *queryResolver) SearchUsers(ctx context.Context, query string, includeSettings *bool) ([]*domain.User, error) {
	found, err := r.account.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}

	users := make([]*domain.User, len(found))
	ids := make([]uuid.UUID, len(found))
	for i := range found {
		users[i] = &found[i]
		ids[i] = found[i].ID
	}

	if includeSettings != nil && *includeSettings {
		dataloader.FromContext(ctx).WarmSettings(ctx, ids)
	}

	return users, nil
}

// Me resolves the caller's own user. Anonymous requests yield null.
func (r *queryResolver) Me(ctx context.Context) (*domain.User, error) {
	return r.account.Me(ctx)
}

// AllSettings resolves the unfiltered settings listing.
func (r *queryResolver) AllSettings(ctx context.Context) ([]*domain.Setting, error) {
	all, err := r.settings.AllSettings(ctx)
	if err != nil {
		return nil, err
	}
	return settingPtrs(all), nil
}

// UpdatedBy resolves the back-reference to the updating user. A setting with
// no recorded updater yields null without touching the store.
func (r *settingResolver) UpdatedBy(ctx context.Context, obj *domain.Setting) (*domain.User, error) {
	if obj.UpdatedBy == nil {
		return nil, nil
	}
	return r.account.GetUser(ctx, *obj.UpdatedBy)
}

// Settings is the resolver for the settings field.
func (r *userResolver) Settings(ctx context.Context, obj *domain.User) ([]*domain.Setting, error) {
	batch, err := dataloader.FromContext(ctx).SettingsByUserID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	return settingPtrs(batch), nil
}

// ActivityLog is the resolver for the activityLog field.
func (r *userResolver) ActivityLog(ctx context.Context, obj *domain.User) ([]*domain.Activity, error) {
	batch, err := dataloader.FromContext(ctx).ActivitiesByUserID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.Activity, len(batch))
	for i := range batch {
		entries[i] = &batch[i]
	}
	return entries, nil
}

// SettingsCount derives the aggregate from the same settings batch, so a
// query asking for both fields costs one fetch.
func (r *userResolver) SettingsCount(ctx context.Context, obj *domain.User) (int, error) {
	batch, err := dataloader.FromContext(ctx).SettingsByUserID.Load(ctx, obj.ID)()
	if err != nil {
		return 0, err
	}
	return len(batch), nil
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// Setting returns generated.SettingResolver implementation.
func (r *Resolver) Setting() generated.SettingResolver { return &settingResolver{r} }

// User returns generated.UserResolver implementation.
func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type settingResolver struct{ *Resolver }
type userResolver struct{ *Resolver }
