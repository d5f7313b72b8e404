package presenter

// Loop aggregates feature presenters and drives periodic updates.
//
// It ticks the crop presenter so finished pipeline outcomes reach the
// view on the UI thread, then invokes a scheduler callback. The zero
// value is usable (methods are nil-safe).
type Loop struct {
	Crop     *CropPresenter
	Schedule func()
}

func NewLoop(crop *CropPresenter, schedule func()) *Loop {
	return &Loop{Crop: crop, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Crop != nil {
		l.Crop.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
