package repositories

type Repos struct {
	Crf          CrfRepo
	Timeline     TimelineRepo
	Remark       RemarkRepo
	Attachment   AttachmentRepo
	User         UserRepo
	Notification NotificationRepo
	Lookup       LookupRepo
}

func New() *Repos {
	return &Repos{
		Crf:          &DBCrfRepo{},
		Timeline:     &DBTimelineRepo{},
		Remark:       &DBRemarkRepo{},
		Attachment:   &DBAttachmentRepo{},
		User:         &DBUserRepo{},
		Notification: &DBNotificationRepo{},
		Lookup:       &DBLookupRepo{},
	}
}
