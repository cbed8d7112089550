package types

// IDParam binds a single :id path segment
type IDParam struct {
	ID uint `uri:"id" binding:"required,min=1"`
}

// FavoriteParams binds /user/:id/favorites/:kind/:entity_id
type FavoriteParams struct {
	UserID   uint   `uri:"id" binding:"required,min=1"`
	Kind     string `uri:"kind" binding:"required"`
	EntityID uint   `uri:"entity_id" binding:"required,min=1"`
}
