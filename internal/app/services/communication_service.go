package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/okul/schoolhub/internal/app/models"
	"github.com/okul/schoolhub/internal/app/models/dto"
	"github.com/okul/schoolhub/internal/client"
)

// SendMessageRequest sends a direct message to another user.
type SendMessageRequest struct {
	RecipientID string `json:"recipient" validate:"required"`
	Subject     string `json:"subject,omitempty"`
	Body        string `json:"body" validate:"required"`
}

// CommunicationService handles the /communications/* endpoint group:
// direct messages, chat rooms and scheduled meetings.
type CommunicationService struct {
	client *client.Client
}

// NewCommunicationService creates a new CommunicationService
func NewCommunicationService(c *client.Client) *CommunicationService {
	return &CommunicationService{client: c}
}

// ListMessages lists the caller's direct messages, optionally filtered.
func (s *CommunicationService) ListMessages(ctx context.Context, params dto.ListParams) ([]models.Message, error) {
	var out []models.Message
	if err := s.client.Get(ctx, "/communications/messages/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage sends a direct message.
func (s *CommunicationService) SendMessage(ctx context.Context, req SendMessageRequest) (*models.Message, error) {
	var out models.Message
	if err := s.client.Post(ctx, "/communications/messages/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkMessageRead marks one message as read.
func (s *CommunicationService) MarkMessageRead(ctx context.Context, id string) error {
	return s.client.Post(ctx, fmt.Sprintf("/communications/messages/%s/mark_as_read/", id), nil, nil)
}

// UnreadMessages lists the caller's unread messages.
func (s *CommunicationService) UnreadMessages(ctx context.Context) ([]models.Message, error) {
	var out []models.Message
	if err := s.client.Get(ctx, "/communications/messages/unread/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListChatRooms lists the chat rooms the caller belongs to.
func (s *CommunicationService) ListChatRooms(ctx context.Context) ([]models.ChatRoom, error) {
	var out []models.ChatRoom
	if err := s.client.Get(ctx, "/communications/chat-rooms/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateChatRoom creates a chat room.
func (s *CommunicationService) CreateChatRoom(ctx context.Context, payload map[string]interface{}) (*models.ChatRoom, error) {
	var out models.ChatRoom
	if err := s.client.Post(ctx, "/communications/chat-rooms/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListChatMessages lists the messages of one chat room.
func (s *CommunicationService) ListChatMessages(ctx context.Context, roomID string) ([]models.ChatMessage, error) {
	q := url.Values{}
	q.Set("room_id", roomID)

	var out []models.ChatMessage
	if err := s.client.Get(ctx, "/communications/chat-messages/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendChatMessage posts a message into a chat room.
func (s *CommunicationService) SendChatMessage(ctx context.Context, roomID, body string) (*models.ChatMessage, error) {
	payload := map[string]interface{}{
		"room":    roomID,
		"content": body,
	}

	var out models.ChatMessage
	if err := s.client.Post(ctx, "/communications/chat-messages/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMeetings lists scheduled meetings, optionally filtered.
func (s *CommunicationService) ListMeetings(ctx context.Context, params dto.ListParams) ([]models.Meeting, error) {
	var out []models.Meeting
	if err := s.client.Get(ctx, "/communications/meetings/", params.Values(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ScheduleMeeting creates a meeting.
func (s *CommunicationService) ScheduleMeeting(ctx context.Context, payload map[string]interface{}) (*models.Meeting, error) {
	var out models.Meeting
	if err := s.client.Post(ctx, "/communications/meetings/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMeeting patches one meeting.
func (s *CommunicationService) UpdateMeeting(ctx context.Context, id string, patch map[string]interface{}) (*models.Meeting, error) {
	var out models.Meeting
	if err := s.client.Patch(ctx, fmt.Sprintf("/communications/meetings/%s/", id), patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelMeeting removes one meeting.
func (s *CommunicationService) CancelMeeting(ctx context.Context, id string) error {
	return s.client.Delete(ctx, fmt.Sprintf("/communications/meetings/%s/", id))
}
