package component

// Presenter receives fire-and-forget presentation requests. Hosts implement it;
// nothing in the simulation reads results back.
type Presenter interface {
	SetFacing(e uint64, left bool)
	SetAnimationFlag(e uint64, name string, on bool)
	PlayAnimation(e uint64, name string)
	PlayOneShot(e uint64, clip string, pitch float64)
	SetVisible(e uint64, visible bool)
}

type NopPresenter struct{}

func (NopPresenter) SetFacing(uint64, bool) {}
func (NopPresenter) SetAnimationFlag(uint64, string, bool) {}
func (NopPresenter) PlayAnimation(uint64, string) {}
func (NopPresenter) PlayOneShot(uint64, string, float64) {}
func (NopPresenter) SetVisible(uint64, bool) {}
