package kitaev

import "log"

// RunTask runs the full pipeline for one task: build the Kitaev Hamiltonian,
// derive the Bogoliubov transformation, synthesize the Gaussian
// state-preparation circuit, produce the Z, X and edge-correlation
// measurement variants, transpile each for the backend and submit all three
// as one batch with the task's total shot count.
//
// RunTask never blocks on results; the returned job handle resolves when the
// backend finishes. Construction, transpilation and submission errors are
// propagated unchanged.
func RunTask(backend Backend, task KitaevHamiltonianTask) (*Job, error) {
	hamiltonian := KitaevHamiltonian(
		task.NModes,
		task.Tunneling,
		task.Superconducting,
		task.ChemicalPotential,
	)
	transform, _, err := hamiltonian.DiagonalizingBogoliubovTransform()
	if err != nil {
		return nil, err
	}
	circuit, err := FermionicGaussianState(transform, task.OccupiedOrbitals)
	if err != nil {
		return nil, err
	}

	zCircuit, err := Transpile(MeasureZ(circuit), backend)
	if err != nil {
		return nil, err
	}
	xCircuit, err := Transpile(MeasureX(circuit), backend)
	if err != nil {
		return nil, err
	}
	edgeCircuit, err := Transpile(MeasureEdgeCorrelation(circuit), backend)
	if err != nil {
		return nil, err
	}

	job, err := backend.Run([]*Circuit{zCircuit, xCircuit, edgeCircuit}, task.TotalShots())
	if err != nil {
		return nil, err
	}
	log.Printf("Submitted task %s as job %s on %s", task.Filename(), job.ID(), backend.Name())
	return job, nil
}
