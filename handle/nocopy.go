package handle

// noCopy may be added to structs which must not be copied after first use.
// go vet's copylocks check reports copies of any struct containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
