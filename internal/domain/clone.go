package domain

// Clone returns a deep copy of the record. The repository hands out clones so
// engine mutations never alias cached state.
func (r *UserRecord) Clone() *UserRecord {
	if r == nil {
		return nil
	}
	out := *r
	out.Leveling.Groups = append([]string(nil), r.Leveling.Groups...)
	if r.Adventure != nil {
		adv := *r.Adventure
		adv.Inventory.Slots = append([]InventorySlot(nil), r.Adventure.Inventory.Slots...)
		adv.QuestsCompleted = append([]string(nil), r.Adventure.QuestsCompleted...)
		out.Adventure = &adv
	}
	return &out
}
