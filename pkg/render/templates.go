package render

import "text/template"

// Section order in the input file is fixed: header, directive line, %pal,
// %goat (common params, then entropy params, then explore params, then
// freeze flags, then uphill method), %geom, coordinate reference. Generated
// ensembles are compared across runs, so the layout must not drift.
const inputTmpl = `# ORCA {{.Variant}} Input File for {{.Molecule}}
# Generated for cyclic peptide conformational search
# Objective: Generate structurally diverse conformations without breaking topology
# Configured for {{.NProcs}} CPU cores

! {{.Directive}}

%pal
  nprocs {{.NProcs}}
end

%goat
  NWORKERS {{.NWorkers}}             # Number of parallel workers
  MAXCORESOPT {{.MaxCoresOpt}}       # Max cores per optimization
  MAXITER {{.MaxIter}}               # Maximum global iterations
  MINGLOBALITER {{.MinGlobalIter}}   # Minimum global iterations
  MAXEN {{.MaxEn}}                   # Maximum relative energy (kcal/mol)
  KEEPWORKERDATA {{.KeepWorkerData}} # Keep worker output files
  CONFTEMP {{.ConfTemp}}             # Temperature for Boltzmann populations (K)
{{- if .Entropy}}
  MAXENTROPY true                  # Use delta Gconf as convergence criteria
  MINDELS {{.MinDelS}}               # Minimum entropy difference (cal/mol/K)
  CONFDEGEN {{.ConfDegen}}           # Rotamer degeneracy handling
{{- end}}
{{- if .Explore}}
  FREEZEBONDS {{.FreezeBonds}}       # Freeze bonds during uphill step
  FREEZEANGLES {{.FreezeAngles}}     # Freeze sp2 angles and dihedrals
{{- end}}
{{- if .FreezeAmides}}
  FREEZEAMIDES true                # Preserve amide bond chirality (cis/trans)
{{- end}}
{{- if .FreezeCisTrans}}
  FREEZECISTRANS true              # Preserve double bond stereochemistry
{{- end}}
{{- if .GFNUphill}}
  GFNUPHILL {{.GFNUphill}}    # Use faster method for uphill steps
{{- end}}
end

%geom
  MaxIter {{.GeomMaxIter}}
  TolE {{.TolE}}
  TolRMSG {{.TolRMSG}}
  TolMaxG {{.TolMaxG}}
end

* xyzfile {{.Charge}} {{.Multiplicity}} {{.XYZPath}}
`

const jobScriptTmpl = `#!/bin/bash
#SBATCH --job-name={{.JobName}}
#SBATCH --nodes={{.Nodes}}
#SBATCH --ntasks={{.NTasks}}
#SBATCH --time={{.WallTime}}
#SBATCH --mem={{.Memory}}
#SBATCH --output=slurm-%j.out
{{- if .Partition}}
#SBATCH --partition={{.Partition}}
{{- end}}

# Load ORCA module
module purge
module load {{.ModuleLoad}}

# Set environment variables
export RSH_COMMAND="{{.RSHCommand}}"

# Print job information
echo "========================================="
echo "Job started at: $(date)"
echo "Job ID: $SLURM_JOB_ID"
echo "Node: $SLURM_NODELIST"
echo "Working directory: $PWD"
echo "========================================="
echo ""

# Run ORCA
{{.OrcaPath}} {{.InputFile}} > {{.OutputFile}}

# Print completion information
echo ""
echo "========================================="
echo "Job completed at: $(date)"
echo "========================================="
`

const submitHelperTmpl = `#!/bin/bash

# Batch submission script for all GOAT jobs
# Generated automatically by goatgen

echo "========================================="
echo "  Submitting All GOAT Jobs"
echo "========================================="
echo ""

scripts=(
{{- range .Scripts}}
    "{{.}}"
{{- end}}
)

echo "Found ${#scripts[@]} job(s) to submit:"
echo ""

job_ids=()
failed=()
for script in "${scripts[@]}"; do
    if [ ! -f "$script" ] || [ ! -x "$script" ]; then
        echo "Skipping: $script (not executable or not found)"
        echo ""
        continue
    fi
    echo "Submitting: $script"
    output=$(sbatch "$script" 2>&1)
    if [ $? -eq 0 ]; then
        job_id=$(echo "$output" | grep -oP 'Submitted batch job \K\d+')
        job_ids+=("$job_id")
        echo "  OK: Job ID $job_id"
    else
        failed+=("$script")
        echo "  FAILED: $output"
    fi
    echo ""
done

echo "========================================="
echo "  Submission Summary"
echo "========================================="
echo ""
echo "Total jobs submitted: ${#job_ids[@]}"
echo "Failed submissions: ${#failed[@]}"
echo "Job IDs: ${job_ids[@]}"
echo ""
echo "To monitor jobs:"
echo "  squeue -u $USER"
echo "  squeue -j $(IFS=,; echo "${job_ids[*]}")"
echo ""
echo "To cancel all jobs:"
echo "  scancel ${job_ids[@]}"
echo ""
`

var (
	inputTemplate        = template.Must(template.New("input").Parse(inputTmpl))
	jobScriptTemplate    = template.Must(template.New("jobscript").Parse(jobScriptTmpl))
	submitHelperTemplate = template.Must(template.New("submithelper").Parse(submitHelperTmpl))
)
