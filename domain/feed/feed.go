// Package feed reconciles change-feed events into an owned, ordered video
// list. The state is an explicit value passed through Apply rather than
// ambient component state, so the reconciliation rules are testable on
// their own.
package feed

import (
	"fmt"

	"walkingtube/domain/dto"
	"walkingtube/domain/model"
)

// State holds the local video list (most recent first) and the currently
// selected video, if any. The zero value is ready to use.
type State struct {
	Videos   []model.Video
	Selected *model.Video
}

// Select marks the video with the given id as the displayed one. Selecting
// an unknown id clears the selection.
func (s *State) Select(id string) {
	for i := range s.Videos {
		if s.Videos[i].ID == id {
			v := s.Videos[i]
			s.Selected = &v
			return
		}
	}
	s.Selected = nil
}

// Apply merges one change-feed event into the state. Rules:
//   - insert: prepend; an id already present is left untouched so replayed
//     events keep ids unique
//   - update: replace the matching entry, last writer wins; refresh the
//     selected copy if it is the one displayed; unknown ids are a no-op
//   - delete: remove the matching entry and clear the selection if the
//     deleted video was displayed
func (s *State) Apply(event dto.ChangeEvent) error {
	switch event.Type {
	case dto.ChangeInsert:
		if event.Record == nil {
			return fmt.Errorf("feed: insert event without record")
		}
		video, err := event.Record.Video()
		if err != nil {
			return err
		}
		for i := range s.Videos {
			if s.Videos[i].ID == video.ID {
				return nil
			}
		}
		s.Videos = append([]model.Video{video}, s.Videos...)
		return nil

	case dto.ChangeUpdate:
		if event.Record == nil {
			return fmt.Errorf("feed: update event without record")
		}
		video, err := event.Record.Video()
		if err != nil {
			return err
		}
		for i := range s.Videos {
			if s.Videos[i].ID == video.ID {
				s.Videos[i] = video
				if s.Selected != nil && s.Selected.ID == video.ID {
					v := video
					s.Selected = &v
				}
				return nil
			}
		}
		return nil

	case dto.ChangeDelete:
		id := ""
		if event.OldRecord != nil {
			id = event.OldRecord.ID
		}
		if id == "" {
			return fmt.Errorf("feed: delete event without id")
		}
		for i := range s.Videos {
			if s.Videos[i].ID == id {
				s.Videos = append(s.Videos[:i], s.Videos[i+1:]...)
				break
			}
		}
		if s.Selected != nil && s.Selected.ID == id {
			s.Selected = nil
		}
		return nil
	}
	return fmt.Errorf("feed: unknown event type %q", event.Type)
}

// Snapshot returns a copy of the current list safe to hand to another owner.
func (s *State) Snapshot() []model.Video {
	out := make([]model.Video, len(s.Videos))
	copy(out, s.Videos)
	return out
}
