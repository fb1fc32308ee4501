package cli

import "github.com/alexanderramin/herdbook/internal/app"

func (a *App) logBreedingUseCase() app.LogBreedingUseCase {
	if a.LogBreeding != nil {
		return a.LogBreeding
	}
	return a.Breedings
}

func (a *App) confirmBreedingUseCase() app.ConfirmBreedingUseCase {
	if a.ConfirmBreeding != nil {
		return a.ConfirmBreeding
	}
	return a.Breedings
}

func (a *App) recordBirthUseCase() app.RecordBirthUseCase {
	if a.RecordBirth != nil {
		return a.RecordBirth
	}
	return a.Pregnancies
}

func (a *App) remindersUseCase() app.RemindersUseCase {
	if a.DueReminders != nil {
		return a.DueReminders
	}
	return a.Reminders
}

func (a *App) importHerdUseCase() app.ImportHerdUseCase {
	if a.ImportHerd != nil {
		return a.ImportHerd
	}
	return a.Import
}
