package domain

// Photo is one uploaded image tied to a keyword. ImagePath may be a full
// URL or a path relative to the backend; resolve it before display.
type Photo struct {
	ID            uint     `json:"id"`
	UserID        uint     `json:"user_id"`
	UserNickname  string   `json:"user_nickname"`
	KeywordID     uint     `json:"keyword_id"`
	ImagePath     string   `json:"image_path"`
	Location      string   `json:"location,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	AIDescription string   `json:"ai_description,omitempty"`
	UploadedAt    string   `json:"uploaded_at"`
	LikeCount     int      `json:"like_count"`
}
