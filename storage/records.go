package storage

import (
	"github.com/PrayerWall/models"
)

// The new* helpers fill every server-derived field so both backends persist
// identical records for the same input.

func (o options) newPrayer(in models.PrayerCreate) models.Prayer {
	return models.Prayer{
		Prayer_ID:     o.newID(),
		Content:       in.Content,
		Category:      in.CategoryOrDefault(),
		Is_Anonymous:  models.IsAnonymousName(in.Author_Name),
		Author_Name:   models.AuthorOrNil(in.Author_Name),
		Lift_Up_Count: 0,
		Is_Moderated:  true,
		Created_At:    o.stamp(),
	}
}

func (o options) newQuestion(in models.QuestionCreate) models.Question {
	return models.Question{
		Question_ID:  o.newID(),
		Title:        in.Title,
		Content:      in.Content,
		Is_Anonymous: models.IsAnonymousName(in.Author_Name),
		Author_Name:  models.AuthorOrNil(in.Author_Name),
		Is_Moderated: true,
		Created_At:   o.stamp(),
	}
}

func (o options) newComment(questionID string, in models.CommentCreate) models.Comment {
	return models.Comment{
		Comment_ID:   o.newID(),
		Question_ID:  questionID,
		Content:      in.Content,
		Is_Anonymous: models.IsAnonymousName(in.Author_Name),
		Author_Name:  models.AuthorOrNil(in.Author_Name),
		Is_Moderated: true,
		Created_At:   o.stamp(),
	}
}

func (o options) newPrayerComment(prayerID string, in models.CommentCreate) models.PrayerComment {
	return models.PrayerComment{
		Comment_ID:   o.newID(),
		Prayer_ID:    prayerID,
		Content:      in.Content,
		Is_Anonymous: models.IsAnonymousName(in.Author_Name),
		Author_Name:  models.AuthorOrNil(in.Author_Name),
		Is_Moderated: true,
		Created_At:   o.stamp(),
	}
}

func (o options) newLiftUp(in models.LiftUpCreate) models.LiftUp {
	return models.LiftUp{
		Lift_Up_ID: o.newID(),
		Prayer_ID:  in.Prayer_ID,
		Session_ID: in.Session_ID,
		Created_At: o.stamp(),
	}
}

func (o options) newBookmark(in models.BookmarkCreate) models.Bookmark {
	return models.Bookmark{
		Bookmark_ID: o.newID(),
		Prayer_ID:   in.Prayer_ID,
		Session_ID:  in.Session_ID,
		Created_At:  o.stamp(),
	}
}

func (o options) newInspiration(seq int, in models.DailyInspirationCreate) models.DailyInspiration {
	return models.DailyInspiration{
		Inspiration_ID: o.newID(),
		Seq:            seq,
		Content:        in.Content,
		Attribution:    in.Attribution,
		Type:           in.Type,
	}
}
